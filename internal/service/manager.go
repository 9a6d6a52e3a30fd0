// Package service wires controller discovery, state sampling and event
// dispatch together and keeps them in sync with the configuration file.
package service

import (
	"context"
	"log"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"xpad/internal/config"
	"xpad/internal/service/discovery"
	"xpad/internal/service/events"
	"xpad/internal/service/sampler"
	"xpad/internal/xinput"

	"github.com/fsnotify/fsnotify"
)

var (
	// Debug enables debug logging within the service package.
	Debug bool
)

// Manager owns one sampler per connected controller. It probes the user
// slots on a fixed cadence, attaches samplers for controllers that
// appear and detaches them when they vanish.
type Manager struct {
	disp     *events.Dispatcher
	confPath string

	mu       sync.Mutex
	conf     *config.Config
	samplers map[int]*sampler.Sampler

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	watcher *fsnotify.Watcher
}

// StartManager launches the slot probe loop and, when confPath is not
// empty, a watcher that reloads the configuration on change. Callers
// should subscribe on disp before starting so no event is missed.
func StartManager(conf *config.Config, disp *events.Dispatcher, confPath string) *Manager {
	if Debug {
		log.Default().Println("StartManager: Debug mode enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		disp:     disp,
		confPath: filepath.Clean(confPath),
		conf:     conf,
		samplers: make(map[int]*sampler.Sampler),
		ctx:      ctx,
		cancel:   cancel,
	}

	m.wg.Add(1)
	go m.watchSlots()

	if confPath != "" {
		if err := m.watchConfig(); err != nil {
			log.Default().Println("Config watch disabled:", err)
		}
	}

	return m
}

// Stop halts the probe and watch loops, then stops every sampler. It
// blocks until all of them have joined.
func (m *Manager) Stop() {
	m.cancel()
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.wg.Wait()

	m.mu.Lock()
	samplers := m.samplers
	m.samplers = make(map[int]*sampler.Sampler)
	m.mu.Unlock()

	for _, s := range samplers {
		s.Stop()
	}
}

func (m *Manager) Dispatcher() *events.Dispatcher { return m.disp }

// Sampler returns the running sampler for a slot, if any.
func (m *Manager) Sampler(slot int) (*sampler.Sampler, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.samplers[slot]
	return s, ok
}

// Slots returns the attached user slots in ascending order.
func (m *Manager) Slots() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	slots := make([]int, 0, len(m.samplers))
	for slot := range m.samplers {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

func (m *Manager) watchSlots() {
	defer m.wg.Done()

	for {
		m.probe()

		m.mu.Lock()
		interval := m.conf.ProbeInterval()
		m.mu.Unlock()

		select {
		case <-m.ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func (m *Manager) probe() {
	m.mu.Lock()
	conf := m.conf
	m.mu.Unlock()

	found := discovery.Connected(conf.MaxControllers)
	seen := make(map[int]bool, len(found))

	for _, slot := range found {
		seen[slot] = true
		m.attach(slot, conf)
	}

	m.mu.Lock()
	var gone []int
	for slot := range m.samplers {
		if !seen[slot] {
			gone = append(gone, slot)
		}
	}
	m.mu.Unlock()

	for _, slot := range gone {
		m.detach(slot)
	}
}

func (m *Manager) attach(slot int, conf *config.Config) {
	m.mu.Lock()
	if _, exists := m.samplers[slot]; exists {
		m.mu.Unlock()
		return
	}
	s := sampler.New(slot, xinput.Query, m.disp, conf.PollInterval(slot), filterFor(conf.Slot(slot)))
	m.samplers[slot] = s
	m.mu.Unlock()

	s.Start()

	if Debug {
		log.Default().Println("Controller attached on slot", slot)
	}

	info, err := discovery.Describe(slot)
	if err != nil {
		info = discovery.Info{Slot: slot}
	}
	m.disp.Publish(events.Event{Kind: events.KindConnected, Slot: slot, Data: info})
}

func (m *Manager) detach(slot int) {
	m.mu.Lock()
	s, ok := m.samplers[slot]
	if ok {
		delete(m.samplers, slot)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	s.Stop()

	if Debug {
		log.Default().Println("Controller detached from slot", slot)
	}
	m.disp.Publish(events.Event{Kind: events.KindDisconnected, Slot: slot})
}

func (m *Manager) watchConfig() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory; editors replace the file rather than write
	// it in place, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(m.confPath)); err != nil {
		watcher.Close()
		return err
	}
	m.watcher = watcher

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case <-m.ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != m.confPath || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				m.reloadConfig()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Default().Println("Config watcher error:", err)
			}
		}
	}()

	return nil
}

// reloadConfig reapplies deadzone filters to the running samplers. Poll
// and probe intervals take effect from the next attach or probe cycle.
func (m *Manager) reloadConfig() {
	conf, err := config.Load(m.confPath)
	if err != nil {
		log.Default().Println("Config reload failed:", err)
		return
	}

	m.mu.Lock()
	m.conf = conf
	slots := make([]int, 0, len(m.samplers))
	running := make([]*sampler.Sampler, 0, len(m.samplers))
	for slot, s := range m.samplers {
		slots = append(slots, slot)
		running = append(running, s)
	}
	m.mu.Unlock()

	for i, s := range running {
		s.SetFilter(filterFor(conf.Slot(slots[i])))
	}

	if Debug {
		log.Default().Println("Config reloaded from", m.confPath)
	}
}

func filterFor(sc *config.SlotConfig) sampler.FilterParams {
	return sampler.FilterParams{
		LeftX:        sc.LeftDeadzone,
		LeftY:        sc.LeftDeadzone,
		RightX:       sc.RightDeadzone,
		RightY:       sc.RightDeadzone,
		LeftTrigger:  sc.TriggerThreshold,
		RightTrigger: sc.TriggerThreshold,
	}
}
