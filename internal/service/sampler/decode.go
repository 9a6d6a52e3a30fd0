package sampler

import (
	"xpad/internal/service/normalize"
	"xpad/internal/xinput"
)

// decode normalizes a raw device report into a snapshot.
func decode(slot int, raw xinput.State, p FilterParams) *State {
	g := raw.Gamepad
	return &State{
		Slot:         slot,
		PacketNumber: raw.PacketNumber,
		Buttons:      decodeButtons(g.Buttons),
		LeftStick:    decodeStick(g.ThumbLX, g.ThumbLY, p.LeftX, p.LeftY),
		RightStick:   decodeStick(g.ThumbRX, g.ThumbRY, p.RightX, p.RightY),
		LeftTrigger:  decodeTrigger(g.LeftTrigger, p.LeftTrigger),
		RightTrigger: decodeTrigger(g.RightTrigger, p.RightTrigger),
		Filter:       p,
	}
}

func decodeButtons(mask uint16) Buttons {
	return Buttons{
		DpadUp:    mask&xinput.ButtonDpadUp != 0,
		DpadDown:  mask&xinput.ButtonDpadDown != 0,
		DpadLeft:  mask&xinput.ButtonDpadLeft != 0,
		DpadRight: mask&xinput.ButtonDpadRight != 0,

		Start: mask&xinput.ButtonStart != 0,
		Back:  mask&xinput.ButtonBack != 0,

		LeftThumb:  mask&xinput.ButtonLeftThumb != 0,
		RightThumb: mask&xinput.ButtonRightThumb != 0,

		LeftShoulder:  mask&xinput.ButtonLeftShoulder != 0,
		RightShoulder: mask&xinput.ButtonRightShoulder != 0,

		A: mask&xinput.ButtonA != 0,
		B: mask&xinput.ButtonB != 0,
		X: mask&xinput.ButtonX != 0,
		Y: mask&xinput.ButtonY != 0,
	}
}

func decodeStick(rawX, rawY int16, dzX, dzY float64) Stick {
	x := normalize.Axis(rawX, normalize.MaxThumb)
	y := normalize.Axis(rawY, normalize.MaxThumb)
	return Stick{
		X:    normalize.Deadzone(x, dzX),
		Y:    normalize.Deadzone(y, dzY),
		RawX: x,
		RawY: y,
	}
}

func decodeTrigger(raw uint8, threshold float64) Trigger {
	v := normalize.Trigger(raw, normalize.MaxTrigger)
	return Trigger{
		Value: normalize.Deadzone(v, threshold),
		Raw:   v,
	}
}
