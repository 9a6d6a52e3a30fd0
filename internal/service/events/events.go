// Package events distributes controller notifications to subscribers over
// per-kind channels.
package events

import "sync"

// Kind classifies a notification.
type Kind uint8

const (
	// KindStateChanged carries a *sampler.State snapshot in Data.
	KindStateChanged Kind = iota
	// KindKeyDown carries the xinput.Keystroke in Data.
	KindKeyDown
	// KindKeyUp carries the xinput.Keystroke in Data.
	KindKeyUp
	// KindConnected carries a discovery.Info in Data when available.
	KindConnected
	// KindDisconnected has no Data.
	KindDisconnected
)

func (k Kind) String() string {
	switch k {
	case KindStateChanged:
		return "state-changed"
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindConnected:
		return "connected"
	case KindDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is a single notification from one controller slot.
type Event struct {
	Kind Kind
	Slot int
	Data any
}

// FilterFunc reports whether a subscriber wants the event.
type FilterFunc func(Event) bool

// SlotFilter keeps only events from one controller slot.
func SlotFilter(slot int) FilterFunc {
	return func(ev Event) bool { return ev.Slot == slot }
}

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 64

// Subscription receives events of one kind on C until closed.
type Subscription struct {
	C <-chan Event

	d       *Dispatcher
	kind    Kind
	ch      chan Event
	filters []FilterFunc
}

// Close removes the subscription and closes its channel. Closing twice is
// harmless.
func (s *Subscription) Close() {
	s.d.unsubscribe(s)
}

func (s *Subscription) wants(ev Event) bool {
	for _, f := range s.filters {
		if !f(ev) {
			return false
		}
	}
	return true
}

// Dispatcher fans events out to per-kind subscriber lists. Publishing never
// blocks: a subscriber that falls behind loses events.
type Dispatcher struct {
	mu   sync.RWMutex
	subs map[Kind][]*Subscription
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[Kind][]*Subscription)}
}

// Subscribe registers a buffered channel for one event kind. Optional
// filters drop events the subscriber does not want.
func (d *Dispatcher) Subscribe(kind Kind, filters ...FilterFunc) *Subscription {
	ch := make(chan Event, DefaultBuffer)
	sub := &Subscription{C: ch, d: d, kind: kind, ch: ch, filters: filters}

	d.mu.Lock()
	d.subs[kind] = append(d.subs[kind], sub)
	d.mu.Unlock()
	return sub
}

// Publish delivers ev to every matching subscriber of its kind. A full
// subscriber buffer drops the event for that subscriber only.
func (d *Dispatcher) Publish(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, sub := range d.subs[ev.Kind] {
		if !sub.wants(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (d *Dispatcher) unsubscribe(sub *Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.subs[sub.kind]
	for i, s := range list {
		if s == sub {
			d.subs[sub.kind] = append(list[:i], list[i+1:]...)
			close(sub.ch)
			return
		}
	}
}
