// Package battery reads controller battery status through the query interface.
package battery

import (
	"errors"
	"fmt"

	"xpad/internal/xinput"
)

// Battery interface defines methods to read battery information.
type Battery interface {
	Status(slot int) (Info, error)
	HeadsetStatus(slot int) (Info, error)
}

// ErrUnknownLevel is returned when the device reports a charge level code
// outside the documented range.
var ErrUnknownLevel = errors.New("battery: unknown battery level")

// Type describes the power source of a controller.
type Type string

const (
	TypeDisconnected Type = "disconnected"
	TypeWired        Type = "wired"
	TypeAlkaline     Type = "alkaline"
	TypeNimh         Type = "nimh"
	TypeUnknown      Type = "unknown"
)

// Info is a decoded battery report. Charge is a fraction in [0, 1].
type Info struct {
	Type   Type
	Charge float64
}

var typeNames = map[uint8]Type{
	xinput.BatteryDisconnected: TypeDisconnected,
	xinput.BatteryWired:        TypeWired,
	xinput.BatteryAlkaline:     TypeAlkaline,
	xinput.BatteryNimh:         TypeNimh,
	xinput.BatteryUnknown:      TypeUnknown,
}

// Charge fractions for each documented battery level code.
var levelCharge = map[uint8]float64{
	xinput.BatteryLevelEmpty:  0.0,
	xinput.BatteryLevelLow:    0.33,
	xinput.BatteryLevelMedium: 0.66,
	xinput.BatteryLevelFull:   1.0,
}

// Status reads the battery information of the controller in the given slot.
// A failed query reads as an unknown battery with zero charge rather than an
// error; ErrUnknownLevel is returned only when a successful query carries an
// undocumented level code.
func Status(slot int) (Info, error) {
	return status(slot, xinput.DevGamepad)
}

// HeadsetStatus reads the battery information of the headset attached to the
// controller in the given slot.
func HeadsetStatus(slot int) (Info, error) {
	return status(slot, xinput.DevHeadset)
}

func status(slot int, dev uint8) (Info, error) {
	raw, err := xinput.Query.GetBatteryInformation(slot, dev)
	if err != nil {
		return Info{Type: TypeUnknown, Charge: 0}, nil
	}

	typ, ok := typeNames[raw.Type]
	if !ok {
		typ = TypeUnknown
	}
	if typ == TypeDisconnected {
		return Info{Type: TypeDisconnected, Charge: 0}, nil
	}

	charge, ok := levelCharge[raw.Level]
	if !ok {
		return Info{}, fmt.Errorf("%w: code %#02x", ErrUnknownLevel, raw.Level)
	}
	return Info{Type: typ, Charge: charge}, nil
}
