// Package xinput abstracts the XInput query interface so the rest of the
// service can be tested against fakes.
package xinput

import "errors"

// Device is the query contract every backend implements. Slot is the user
// index of the controller, 0 to MaxControllers-1.
type Device interface {
	GetState(slot int) (State, error)
	GetKeystroke(slot int) (Keystroke, error)
	GetBatteryInformation(slot int, dev uint8) (Battery, error)
	SetVibration(slot int, vib Vibration) error
	GetCapabilities(slot int) (Capabilities, error)
}

var (
	// ErrDeviceNotConnected is returned when the slot has no responding controller.
	ErrDeviceNotConnected = errors.New("xinput: device not connected")
	// ErrNoKeystroke is returned by GetKeystroke when the keystroke queue is empty.
	ErrNoKeystroke = errors.New("xinput: no pending keystroke")
	// ErrUnsupported is returned by backends that cannot perform an operation.
	ErrUnsupported = errors.New("xinput: operation not supported by this backend")
)

// Query is the package-level Device used by code talking to controllers.
// It defaults to the native runtime on Windows and to the portable joystick
// bridge elsewhere. Tests may replace it.
var Query Device = newDevice()
