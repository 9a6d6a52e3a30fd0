package xinput

import (
	"sync"

	"github.com/0xcafed00d/joystick"
)

// bridgeAxes is how many joystick axes the bridge inspects.
const bridgeAxes = 8

// bridgeReading is one joystick readout reduced to a comparable value.
type bridgeReading struct {
	axes    [bridgeAxes]int
	buttons uint32
}

type bridgeSlot struct {
	js     joystick.Joystick
	prev   bridgeReading
	packet uint32
	read   bool
}

// packetFor advances the synthetic packet number when the readout changed.
func (s *bridgeSlot) packetFor(r bridgeReading) uint32 {
	if !s.read || r != s.prev {
		s.packet++
		s.prev = r
		s.read = true
	}
	return s.packet
}

// bridgeDevice adapts the portable joystick library to the query contract
// for platforms without a native XInput runtime. Keystrokes, battery data
// and vibration are not available through it.
type bridgeDevice struct {
	mu    sync.Mutex
	slots [MaxControllers]*bridgeSlot
}

// NewBridge returns a Device backed by the portable joystick library.
func NewBridge() Device { return &bridgeDevice{} }

func (b *bridgeDevice) GetState(slot int) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.open(slot)
	if err != nil {
		return State{}, err
	}

	raw, err := s.js.Read()
	if err != nil {
		s.js.Close()
		b.slots[slot] = nil
		return State{}, ErrDeviceNotConnected
	}

	r := reduceReading(raw)
	return State{PacketNumber: s.packetFor(r), Gamepad: mapGamepad(r)}, nil
}

func (b *bridgeDevice) GetKeystroke(int) (Keystroke, error) {
	return Keystroke{}, ErrUnsupported
}

func (b *bridgeDevice) GetBatteryInformation(int, uint8) (Battery, error) {
	return Battery{}, ErrUnsupported
}

func (b *bridgeDevice) SetVibration(int, Vibration) error {
	return ErrUnsupported
}

func (b *bridgeDevice) GetCapabilities(slot int) (Capabilities, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.open(slot); err != nil {
		return Capabilities{}, err
	}
	return Capabilities{Type: DevTypeGamepad, SubType: DevSubTypeGamepad}, nil
}

// open returns the slot handle, opening the underlying joystick on first use.
func (b *bridgeDevice) open(slot int) (*bridgeSlot, error) {
	if slot < 0 || slot >= MaxControllers {
		return nil, ErrDeviceNotConnected
	}
	if s := b.slots[slot]; s != nil {
		return s, nil
	}
	js, err := joystick.Open(slot)
	if err != nil {
		return nil, ErrDeviceNotConnected
	}
	s := &bridgeSlot{js: js}
	b.slots[slot] = s
	return s, nil
}

// reduceReading copies a joystick readout into a comparable value.
func reduceReading(raw joystick.State) bridgeReading {
	var r bridgeReading
	n := len(raw.AxisData)
	if n > bridgeAxes {
		n = bridgeAxes
	}
	copy(r.axes[:], raw.AxisData[:n])
	r.buttons = raw.Buttons
	return r
}

func clampAxis(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32767 {
		return -32767
	}
	return int16(v)
}
