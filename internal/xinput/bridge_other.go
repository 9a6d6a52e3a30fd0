//go:build !windows

package xinput

// Linux xpad layout: buttons indexed A, B, X, Y, LB, RB, Back, Start,
// Guide, LThumb, RThumb; sticks on axes 0/1 and 3/4 with Y growing
// downward; triggers on axes 2 and 5 spanning -32767..32767; d-pad on
// hat axes 6/7.
var bridgeButtons = [...]uint16{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonLeftShoulder, ButtonRightShoulder,
	ButtonBack, ButtonStart,
	0, // guide has no XInput bit
	ButtonLeftThumb, ButtonRightThumb,
}

func mapGamepad(r bridgeReading) Gamepad {
	var g Gamepad
	for i, mask := range bridgeButtons {
		if mask != 0 && r.buttons&(1<<uint(i)) != 0 {
			g.Buttons |= mask
		}
	}

	g.ThumbLX = clampAxis(r.axes[0])
	g.ThumbLY = clampAxis(-r.axes[1])
	g.LeftTrigger = triggerByte(r.axes[2])
	g.ThumbRX = clampAxis(r.axes[3])
	g.ThumbRY = clampAxis(-r.axes[4])
	g.RightTrigger = triggerByte(r.axes[5])

	switch {
	case r.axes[6] < 0:
		g.Buttons |= ButtonDpadLeft
	case r.axes[6] > 0:
		g.Buttons |= ButtonDpadRight
	}
	switch {
	case r.axes[7] < 0:
		g.Buttons |= ButtonDpadUp
	case r.axes[7] > 0:
		g.Buttons |= ButtonDpadDown
	}
	return g
}

// triggerByte re-ranges a -32767..32767 trigger axis onto 0..255.
func triggerByte(v int) uint8 {
	if v < -32767 {
		v = -32767
	}
	if v > 32767 {
		v = 32767
	}
	return uint8((v + 32767) * 255 / 65534)
}
