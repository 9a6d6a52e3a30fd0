package xinput

// The joystick library's Windows build reads XInput itself: Buttons carries
// the native button mask and the axes are LX, LY, RX, RY, LT, RT with the
// triggers already on 0..255.
func mapGamepad(r bridgeReading) Gamepad {
	return Gamepad{
		Buttons:      uint16(r.buttons),
		ThumbLX:      clampAxis(r.axes[0]),
		ThumbLY:      clampAxis(r.axes[1]),
		ThumbRX:      clampAxis(r.axes[2]),
		ThumbRY:      clampAxis(r.axes[3]),
		LeftTrigger:  clampTrigger(r.axes[4]),
		RightTrigger: clampTrigger(r.axes[5]),
	}
}

func clampTrigger(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
