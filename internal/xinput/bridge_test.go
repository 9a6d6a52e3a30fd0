package xinput

import (
	"testing"

	"github.com/0xcafed00d/joystick"
)

func TestBridgePacketAdvancesOnChange(t *testing.T) {
	s := &bridgeSlot{}

	r := bridgeReading{}
	r.axes[0] = 100

	if got := s.packetFor(r); got != 1 {
		t.Fatalf("expected first packet 1, got %d", got)
	}
	if got := s.packetFor(r); got != 1 {
		t.Fatalf("expected unchanged readout to keep packet 1, got %d", got)
	}

	r.axes[0] = 200
	if got := s.packetFor(r); got != 2 {
		t.Fatalf("expected changed axis to advance packet to 2, got %d", got)
	}
	if got := s.packetFor(r); got != 2 {
		t.Fatalf("expected unchanged readout to keep packet 2, got %d", got)
	}

	r.buttons = 0x01
	if got := s.packetFor(r); got != 3 {
		t.Fatalf("expected changed buttons to advance packet to 3, got %d", got)
	}
}

func TestBridgePacketForIdleStart(t *testing.T) {
	// An all-zero first readout must still produce a packet so the first
	// sample is observable.
	s := &bridgeSlot{}
	if got := s.packetFor(bridgeReading{}); got != 1 {
		t.Fatalf("expected idle first readout to produce packet 1, got %d", got)
	}
	if got := s.packetFor(bridgeReading{}); got != 1 {
		t.Fatalf("expected idle readout to keep packet 1, got %d", got)
	}
}

func TestReduceReading(t *testing.T) {
	raw := joystick.State{
		AxisData: []int{1, -2, 3},
		Buttons:  0x05,
	}

	r := reduceReading(raw)
	if r.axes[0] != 1 || r.axes[1] != -2 || r.axes[2] != 3 {
		t.Fatalf("unexpected axes: %v", r.axes)
	}
	for i := 3; i < bridgeAxes; i++ {
		if r.axes[i] != 0 {
			t.Fatalf("expected axis %d to be zero, got %d", i, r.axes[i])
		}
	}
	if r.buttons != 0x05 {
		t.Fatalf("expected buttons 0x05, got %#x", r.buttons)
	}

	// Readouts with more axes than the bridge inspects are truncated.
	raw.AxisData = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r = reduceReading(raw)
	if r.axes[bridgeAxes-1] != 7 {
		t.Fatalf("expected last inspected axis 7, got %d", r.axes[bridgeAxes-1])
	}
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		in   int
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{-32767, -32767},
		{40000, 32767},
		{-40000, -32767},
		{-(-32768), 32767}, // negated minimum must not overflow
	}

	for _, tt := range tests {
		if got := clampAxis(tt.in); got != tt.want {
			t.Errorf("clampAxis(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}
