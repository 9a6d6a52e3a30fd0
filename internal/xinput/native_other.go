//go:build !windows

package xinput

// NewNative returns the Device backed by the platform XInput runtime.
// There is none outside Windows.
func NewNative() (Device, error) {
	return nil, ErrUnsupported
}

func newDevice() Device { return NewBridge() }
