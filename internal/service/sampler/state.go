// Package sampler polls one controller slot and publishes normalized state
// snapshots and key transition events.
package sampler

// FilterParams are the deadzones and trigger thresholds applied when a raw
// sample is normalized. Every value is a fraction in [0, 1).
type FilterParams struct {
	LeftX  float64
	LeftY  float64
	RightX float64
	RightY float64

	LeftTrigger  float64
	RightTrigger float64
}

// Buttons holds the decoded state of every gamepad button.
type Buttons struct {
	DpadUp    bool
	DpadDown  bool
	DpadLeft  bool
	DpadRight bool

	Start bool
	Back  bool

	LeftThumb  bool
	RightThumb bool

	LeftShoulder  bool
	RightShoulder bool

	A bool
	B bool
	X bool
	Y bool
}

// Stick is one thumbstick. X and Y are deadzone-filtered; RawX and RawY
// keep the unfiltered normalized values.
type Stick struct {
	X    float64
	Y    float64
	RawX float64
	RawY float64
}

// Trigger is one analog trigger. Value is threshold-filtered; Raw keeps the
// unfiltered normalized value.
type Trigger struct {
	Value float64
	Raw   float64
}

// State is an immutable snapshot of one controller. The sampler publishes a
// fresh State for every accepted sample; readers must not mutate it.
type State struct {
	Slot         int
	PacketNumber uint32

	Buttons      Buttons
	LeftStick    Stick
	RightStick   Stick
	LeftTrigger  Trigger
	RightTrigger Trigger

	// Filter holds the parameters the snapshot was normalized with.
	Filter FilterParams
}

// Control identifies a single button or axis on the pad.
type Control string

const (
	ControlDpadUp        Control = "DpadUp"
	ControlDpadDown      Control = "DpadDown"
	ControlDpadLeft      Control = "DpadLeft"
	ControlDpadRight     Control = "DpadRight"
	ControlStart         Control = "Start"
	ControlBack          Control = "Back"
	ControlLeftThumb     Control = "LeftThumb"
	ControlRightThumb    Control = "RightThumb"
	ControlLeftShoulder  Control = "LeftShoulder"
	ControlRightShoulder Control = "RightShoulder"
	ControlA             Control = "A"
	ControlB             Control = "B"
	ControlX             Control = "X"
	ControlY             Control = "Y"

	ControlLeftStickX   Control = "LeftStickX"
	ControlLeftStickY   Control = "LeftStickY"
	ControlRightStickX  Control = "RightStickX"
	ControlRightStickY  Control = "RightStickY"
	ControlLeftTrigger  Control = "LeftTrigger"
	ControlRightTrigger Control = "RightTrigger"
)

// ActiveControl returns the first control with a live reading: a held
// button, or an axis still deflected after filtering. Buttons are scanned
// before axes, axes before triggers. The second result is false when the
// pad is at rest.
func (s *State) ActiveControl() (Control, bool) {
	b := s.Buttons
	switch {
	case b.DpadUp:
		return ControlDpadUp, true
	case b.DpadDown:
		return ControlDpadDown, true
	case b.DpadLeft:
		return ControlDpadLeft, true
	case b.DpadRight:
		return ControlDpadRight, true
	case b.Start:
		return ControlStart, true
	case b.Back:
		return ControlBack, true
	case b.LeftThumb:
		return ControlLeftThumb, true
	case b.RightThumb:
		return ControlRightThumb, true
	case b.LeftShoulder:
		return ControlLeftShoulder, true
	case b.RightShoulder:
		return ControlRightShoulder, true
	case b.A:
		return ControlA, true
	case b.B:
		return ControlB, true
	case b.X:
		return ControlX, true
	case b.Y:
		return ControlY, true
	}

	switch {
	case s.LeftStick.X != 0:
		return ControlLeftStickX, true
	case s.LeftStick.Y != 0:
		return ControlLeftStickY, true
	case s.RightStick.X != 0:
		return ControlRightStickX, true
	case s.RightStick.Y != 0:
		return ControlRightStickY, true
	case s.LeftTrigger.Value != 0:
		return ControlLeftTrigger, true
	case s.RightTrigger.Value != 0:
		return ControlRightTrigger, true
	}

	return "", false
}
