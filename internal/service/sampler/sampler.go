package sampler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"xpad/internal/service/events"
	"xpad/internal/xinput"
)

var (
	// Debug enables debug logging within the sampler package.
	Debug bool
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 5 * time.Millisecond

// Sampler polls one controller slot at a fixed interval. Accepted samples
// are normalized, stored as the current snapshot and published as
// state-changed events; queued keystrokes are published as key-down and
// key-up events independently of the state path.
type Sampler struct {
	slot     int
	dev      xinput.Device
	disp     *events.Dispatcher
	interval time.Duration

	filter    atomic.Pointer[FilterParams]
	state     atomic.Pointer[State]
	connected atomic.Bool

	// lastPacket starts below any packet number so the first accepted
	// sample always publishes. Only the poll goroutine touches it.
	lastPacket int64

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// New returns a sampler for one slot. Events go to disp, which must not be
// nil. A non-positive interval falls back to DefaultInterval.
func New(slot int, dev xinput.Device, disp *events.Dispatcher, interval time.Duration, filter FilterParams) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sampler{
		slot:       slot,
		dev:        dev,
		disp:       disp,
		interval:   interval,
		lastPacket: -1,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	s.filter.Store(&filter)
	return s
}

// Start launches the poll loop. A sampler runs at most once; starting an
// already started or stopped sampler does nothing.
func (s *Sampler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.run()
}

// Stop cancels the poll loop and waits for it to exit. Stopping is
// idempotent and final: a stopped sampler cannot be restarted.
func (s *Sampler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		s.cancel()
		if !s.started {
			close(s.done)
		}
	}
	s.mu.Unlock()

	<-s.done
}

// Stopped reports whether Stop has been called.
func (s *Sampler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Slot returns the user slot this sampler polls.
func (s *Sampler) Slot() int { return s.slot }

// State returns the most recent accepted snapshot, or nil before the first
// accepted sample.
func (s *Sampler) State() *State { return s.state.Load() }

// Connected reports whether the last device query succeeded.
func (s *Sampler) Connected() bool { return s.connected.Load() }

// SetFilter replaces the filter parameters used for subsequent samples.
// The current snapshot is not recomputed.
func (s *Sampler) SetFilter(p FilterParams) { s.filter.Store(&p) }

// Filter returns the filter parameters applied to the next sample.
func (s *Sampler) Filter() FilterParams { return *s.filter.Load() }

// ActiveControl scans the current snapshot for a live control. It reports
// false before the first accepted sample and while the pad is at rest.
func (s *Sampler) ActiveControl() (Control, bool) {
	st := s.state.Load()
	if st == nil {
		return "", false
	}
	return st.ActiveControl()
}

func (s *Sampler) run() {
	defer close(s.done)

	if Debug {
		log.Default().Printf("Sampler started for slot %d polling every %s\n", s.slot, s.interval)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.poll()
		select {
		case <-s.ctx.Done():
			if Debug {
				log.Default().Println("Sampler stopped for slot", s.slot)
			}
			return
		case <-ticker.C:
		}
	}
}

// poll runs one iteration: the state path and then the keystroke path. A
// failed query skips its path for this iteration and nothing else.
func (s *Sampler) poll() {
	raw, err := s.dev.GetState(s.slot)
	if err != nil {
		s.connected.Store(false)
	} else {
		s.connected.Store(true)
		if int64(raw.PacketNumber) > s.lastPacket {
			s.lastPacket = int64(raw.PacketNumber)
			st := decode(s.slot, raw, *s.filter.Load())
			s.state.Store(st)
			s.disp.Publish(events.Event{Kind: events.KindStateChanged, Slot: s.slot, Data: st})
		}
	}

	ks, err := s.dev.GetKeystroke(s.slot)
	if err != nil {
		return
	}
	switch {
	case ks.Flags&xinput.KeystrokeRepeat != 0:
		// held-button repeats are not transitions
	case ks.Flags&xinput.KeystrokeKeyDown != 0:
		s.disp.Publish(events.Event{Kind: events.KindKeyDown, Slot: s.slot, Data: ks})
	case ks.Flags&xinput.KeystrokeKeyUp != 0:
		s.disp.Publish(events.Event{Kind: events.KindKeyUp, Slot: s.slot, Data: ks})
	}
}
