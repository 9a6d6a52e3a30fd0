// Package discovery enumerates connected controllers through the query interface.
package discovery

import (
	"fmt"

	"xpad/internal/xinput"
)

// Discovery interface defines methods for finding connected controllers.
type Discovery interface {
	Connected(max int) []int
	Describe(slot int) (Info, error)
}

// Info describes the capabilities of one connected controller.
type Info struct {
	Slot          int
	SubType       string
	Wireless      bool
	Voice         bool
	ForceFeedback bool
}

// Connected probes every user slot up to max and returns the slots with a
// responding controller.
func Connected(max int) []int {
	if max <= 0 || max > xinput.MaxControllers {
		max = xinput.MaxControllers
	}

	var found []int
	for slot := 0; slot < max; slot++ {
		if _, err := xinput.Query.GetState(slot); err != nil {
			continue
		}
		found = append(found, slot)
	}
	return found
}

// Describe reads and decodes the capabilities of the controller in the
// given slot.
func Describe(slot int) (Info, error) {
	caps, err := xinput.Query.GetCapabilities(slot)
	if err != nil {
		return Info{}, fmt.Errorf("discovery: slot %d: %w", slot, err)
	}

	return Info{
		Slot:          slot,
		SubType:       subTypeName(caps.SubType),
		Wireless:      caps.Flags&xinput.CapsWireless != 0,
		Voice:         caps.Flags&xinput.CapsVoiceSupported != 0,
		ForceFeedback: caps.Flags&xinput.CapsFFBSupported != 0,
	}, nil
}

func subTypeName(code uint8) string {
	switch code {
	case xinput.DevSubTypeGamepad:
		return "gamepad"
	case xinput.DevSubTypeWheel:
		return "wheel"
	case xinput.DevSubTypeArcadeStick:
		return "arcade stick"
	case xinput.DevSubTypeFlightStick:
		return "flight stick"
	case xinput.DevSubTypeDancePad:
		return "dance pad"
	case xinput.DevSubTypeGuitar:
		return "guitar"
	case xinput.DevSubTypeDrumKit:
		return "drum kit"
	case xinput.DevSubTypeArcadePad:
		return "arcade pad"
	default:
		return fmt.Sprintf("unknown (%#02x)", code)
	}
}
