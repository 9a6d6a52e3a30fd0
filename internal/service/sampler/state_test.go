package sampler

import (
	"math"
	"testing"

	"xpad/internal/xinput"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDecodeButtons(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		get  func(Buttons) bool
	}{
		{"dpad up", xinput.ButtonDpadUp, func(b Buttons) bool { return b.DpadUp }},
		{"dpad down", xinput.ButtonDpadDown, func(b Buttons) bool { return b.DpadDown }},
		{"dpad left", xinput.ButtonDpadLeft, func(b Buttons) bool { return b.DpadLeft }},
		{"dpad right", xinput.ButtonDpadRight, func(b Buttons) bool { return b.DpadRight }},
		{"start", xinput.ButtonStart, func(b Buttons) bool { return b.Start }},
		{"back", xinput.ButtonBack, func(b Buttons) bool { return b.Back }},
		{"left thumb", xinput.ButtonLeftThumb, func(b Buttons) bool { return b.LeftThumb }},
		{"right thumb", xinput.ButtonRightThumb, func(b Buttons) bool { return b.RightThumb }},
		{"left shoulder", xinput.ButtonLeftShoulder, func(b Buttons) bool { return b.LeftShoulder }},
		{"right shoulder", xinput.ButtonRightShoulder, func(b Buttons) bool { return b.RightShoulder }},
		{"a", xinput.ButtonA, func(b Buttons) bool { return b.A }},
		{"b", xinput.ButtonB, func(b Buttons) bool { return b.B }},
		{"x", xinput.ButtonX, func(b Buttons) bool { return b.X }},
		{"y", xinput.ButtonY, func(b Buttons) bool { return b.Y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := decodeButtons(tt.mask)
			if !tt.get(b) {
				t.Fatalf("expected %s set for mask %#04x", tt.name, tt.mask)
			}
		})
	}

	if decodeButtons(0) != (Buttons{}) {
		t.Fatalf("expected empty mask to decode to no buttons")
	}

	b := decodeButtons(xinput.ButtonA | xinput.ButtonY)
	if !b.A || !b.Y || b.B {
		t.Fatalf("unexpected combined decode: %+v", b)
	}
}

func TestDecodeNormalizesSticks(t *testing.T) {
	raw := xinput.State{PacketNumber: 3}
	raw.Gamepad.ThumbLX = 16383
	raw.Gamepad.ThumbLY = -16383
	raw.Gamepad.ThumbRX = 32767
	raw.Gamepad.ThumbRY = -32768

	p := FilterParams{LeftX: 0.1, LeftY: 0.1}
	st := decode(2, raw, p)

	if st.Slot != 2 || st.PacketNumber != 3 {
		t.Fatalf("unexpected identity: slot %d packet %d", st.Slot, st.PacketNumber)
	}

	half := 16383.0 / 32767.0
	if !almostEqual(st.LeftStick.RawX, half) {
		t.Fatalf("expected RawX %v got %v", half, st.LeftStick.RawX)
	}
	want := (half - 0.1) / 0.9
	if !almostEqual(st.LeftStick.X, want) {
		t.Fatalf("expected filtered X %v got %v", want, st.LeftStick.X)
	}
	if !almostEqual(st.LeftStick.Y, -want) {
		t.Fatalf("expected filtered Y %v got %v", -want, st.LeftStick.Y)
	}

	// the right stick has no deadzone configured
	if !almostEqual(st.RightStick.X, 1) {
		t.Fatalf("expected full deflection 1 got %v", st.RightStick.X)
	}
	if !almostEqual(st.RightStick.Y, -1) {
		t.Fatalf("expected clamped deflection -1 got %v", st.RightStick.Y)
	}

	if st.Filter != p {
		t.Fatalf("expected snapshot to carry its filter params")
	}
}

func TestDecodeNormalizesTriggers(t *testing.T) {
	raw := xinput.State{}
	raw.Gamepad.LeftTrigger = 20
	raw.Gamepad.RightTrigger = 255

	threshold := 30.0 / 255.0
	st := decode(0, raw, FilterParams{LeftTrigger: threshold, RightTrigger: threshold})

	if st.LeftTrigger.Value != 0 {
		t.Fatalf("expected trigger below threshold to read 0, got %v", st.LeftTrigger.Value)
	}
	if !almostEqual(st.LeftTrigger.Raw, 20.0/255.0) {
		t.Fatalf("expected raw trigger %v got %v", 20.0/255.0, st.LeftTrigger.Raw)
	}
	if !almostEqual(st.RightTrigger.Value, 1) {
		t.Fatalf("expected full trigger 1 got %v", st.RightTrigger.Value)
	}
}

func TestActiveControl(t *testing.T) {
	var st State
	if c, ok := st.ActiveControl(); ok {
		t.Fatalf("expected no active control at rest, got %s", c)
	}

	// buttons win over axes
	st.Buttons.A = true
	st.LeftStick.X = 0.5
	if c, ok := st.ActiveControl(); !ok || c != ControlA {
		t.Fatalf("expected A got %s", c)
	}

	st.Buttons.A = false
	if c, ok := st.ActiveControl(); !ok || c != ControlLeftStickX {
		t.Fatalf("expected LeftStickX got %s", c)
	}

	st.LeftStick.X = 0
	st.RightTrigger.Value = 0.2
	if c, ok := st.ActiveControl(); !ok || c != ControlRightTrigger {
		t.Fatalf("expected RightTrigger got %s", c)
	}

	// deflection inside the deadzone is not activity
	st.RightTrigger.Value = 0
	st.LeftStick.RawX = 0.2
	if c, ok := st.ActiveControl(); ok {
		t.Fatalf("expected filtered rest to be inactive, got %s", c)
	}
}
