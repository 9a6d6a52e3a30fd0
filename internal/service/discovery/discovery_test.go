package discovery

import (
	"errors"
	"testing"

	"xpad/internal/xinput"
)

type fakeDevice struct {
	present map[int]bool
	caps    map[int]xinput.Capabilities
}

func (f *fakeDevice) GetState(slot int) (xinput.State, error) {
	if !f.present[slot] {
		return xinput.State{}, xinput.ErrDeviceNotConnected
	}
	return xinput.State{PacketNumber: 1}, nil
}
func (f *fakeDevice) GetKeystroke(int) (xinput.Keystroke, error) {
	return xinput.Keystroke{}, xinput.ErrNoKeystroke
}
func (f *fakeDevice) GetBatteryInformation(int, uint8) (xinput.Battery, error) {
	return xinput.Battery{}, xinput.ErrUnsupported
}
func (f *fakeDevice) SetVibration(int, xinput.Vibration) error {
	return xinput.ErrUnsupported
}
func (f *fakeDevice) GetCapabilities(slot int) (xinput.Capabilities, error) {
	caps, ok := f.caps[slot]
	if !ok {
		return xinput.Capabilities{}, xinput.ErrDeviceNotConnected
	}
	return caps, nil
}

func TestConnected(t *testing.T) {
	old := xinput.Query
	xinput.Query = &fakeDevice{present: map[int]bool{0: true, 2: true}}
	defer func() { xinput.Query = old }()

	found := Connected(4)
	if len(found) != 2 || found[0] != 0 || found[1] != 2 {
		t.Fatalf("expected slots [0 2], got %v", found)
	}

	// probing is capped at the number of user slots
	found = Connected(100)
	if len(found) != 2 {
		t.Fatalf("expected 2 controllers, got %v", found)
	}

	found = Connected(1)
	if len(found) != 1 || found[0] != 0 {
		t.Fatalf("expected only slot 0, got %v", found)
	}
}

func TestConnectedNone(t *testing.T) {
	old := xinput.Query
	xinput.Query = &fakeDevice{present: map[int]bool{}}
	defer func() { xinput.Query = old }()

	if found := Connected(4); len(found) != 0 {
		t.Fatalf("expected no controllers, got %v", found)
	}
}

func TestDescribe(t *testing.T) {
	old := xinput.Query
	xinput.Query = &fakeDevice{
		present: map[int]bool{1: true},
		caps: map[int]xinput.Capabilities{
			1: {
				Type:    xinput.DevTypeGamepad,
				SubType: xinput.DevSubTypeGamepad,
				Flags:   xinput.CapsWireless | xinput.CapsFFBSupported,
			},
		},
	}
	defer func() { xinput.Query = old }()

	info, err := Describe(1)
	if err != nil {
		t.Fatalf("Describe error: %v", err)
	}
	if info.Slot != 1 {
		t.Fatalf("expected slot 1 got %d", info.Slot)
	}
	if info.SubType != "gamepad" {
		t.Fatalf("expected gamepad got %q", info.SubType)
	}
	if !info.Wireless || !info.ForceFeedback || info.Voice {
		t.Fatalf("unexpected flags: %+v", info)
	}
}

func TestDescribeMissingSlot(t *testing.T) {
	old := xinput.Query
	xinput.Query = &fakeDevice{}
	defer func() { xinput.Query = old }()

	_, err := Describe(3)
	if !errors.Is(err, xinput.ErrDeviceNotConnected) {
		t.Fatalf("expected device error, got %v", err)
	}
}

func TestSubTypeName(t *testing.T) {
	tests := []struct {
		code uint8
		want string
	}{
		{xinput.DevSubTypeGamepad, "gamepad"},
		{xinput.DevSubTypeWheel, "wheel"},
		{xinput.DevSubTypeGuitar, "guitar"},
		{0x7F, "unknown (0x7f)"},
	}

	for _, tt := range tests {
		if got := subTypeName(tt.code); got != tt.want {
			t.Errorf("subTypeName(%#02x) = %q; want %q", tt.code, got, tt.want)
		}
	}
}
