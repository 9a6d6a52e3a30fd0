//go:build windows

package xinput

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Return codes of the XInput entry points.
const (
	retSuccess            = 0
	retDeviceNotConnected = 1167 // ERROR_DEVICE_NOT_CONNECTED
	retEmpty              = 4306 // ERROR_EMPTY
)

// Limit GetCapabilities to gamepad class devices (XINPUT_FLAG_GAMEPAD).
const flagGamepad = 0x0001

var (
	xinputDLL                 = windows.NewLazySystemDLL("xinput1_4.dll") // Windows 8+
	procGetState              = xinputDLL.NewProc("XInputGetState")
	procSetState              = xinputDLL.NewProc("XInputSetState")
	procGetKeystroke          = xinputDLL.NewProc("XInputGetKeystroke")
	procGetBatteryInformation = xinputDLL.NewProc("XInputGetBatteryInformation")
	procGetCapabilities       = xinputDLL.NewProc("XInputGetCapabilities")
)

// dllDevice talks to xinput1_4.dll directly.
type dllDevice struct{}

func (dllDevice) GetState(slot int) (State, error) {
	var st State
	ret, _, _ := procGetState.Call(uintptr(slot), uintptr(unsafe.Pointer(&st)))
	if err := callErr(ret); err != nil {
		return State{}, err
	}
	return st, nil
}

func (dllDevice) GetKeystroke(slot int) (Keystroke, error) {
	var ks Keystroke
	ret, _, _ := procGetKeystroke.Call(uintptr(slot), 0, uintptr(unsafe.Pointer(&ks)))
	if err := callErr(ret); err != nil {
		return Keystroke{}, err
	}
	return ks, nil
}

func (dllDevice) GetBatteryInformation(slot int, dev uint8) (Battery, error) {
	var bi Battery
	ret, _, _ := procGetBatteryInformation.Call(uintptr(slot), uintptr(dev), uintptr(unsafe.Pointer(&bi)))
	if err := callErr(ret); err != nil {
		return Battery{}, err
	}
	return bi, nil
}

func (dllDevice) SetVibration(slot int, vib Vibration) error {
	ret, _, _ := procSetState.Call(uintptr(slot), uintptr(unsafe.Pointer(&vib)))
	return callErr(ret)
}

func (dllDevice) GetCapabilities(slot int) (Capabilities, error) {
	var caps Capabilities
	ret, _, _ := procGetCapabilities.Call(uintptr(slot), flagGamepad, uintptr(unsafe.Pointer(&caps)))
	if err := callErr(ret); err != nil {
		return Capabilities{}, err
	}
	return caps, nil
}

func callErr(ret uintptr) error {
	switch ret {
	case retSuccess:
		return nil
	case retDeviceNotConnected:
		return ErrDeviceNotConnected
	case retEmpty:
		return ErrNoKeystroke
	default:
		return fmt.Errorf("xinput: call failed with code %d", ret)
	}
}

// NewNative returns the Device backed by xinput1_4.dll. It fails when
// the DLL cannot be loaded.
func NewNative() (Device, error) {
	if err := xinputDLL.Load(); err != nil {
		return nil, fmt.Errorf("xinput: %w", err)
	}
	return dllDevice{}, nil
}

func newDevice() Device { return dllDevice{} }
