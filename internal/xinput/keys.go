package xinput

// Virtual key codes carried in Keystroke.VirtualKey. The thumbstick codes
// are synthetic directional keys the runtime derives from stick positions.
const (
	VKPadA             uint16 = 0x5800
	VKPadB             uint16 = 0x5801
	VKPadX             uint16 = 0x5802
	VKPadY             uint16 = 0x5803
	VKPadRightShoulder uint16 = 0x5804
	VKPadLeftShoulder  uint16 = 0x5805
	VKPadLeftTrigger   uint16 = 0x5806
	VKPadRightTrigger  uint16 = 0x5807

	VKPadDpadUp    uint16 = 0x5810
	VKPadDpadDown  uint16 = 0x5811
	VKPadDpadLeft  uint16 = 0x5812
	VKPadDpadRight uint16 = 0x5813
	VKPadStart     uint16 = 0x5814
	VKPadBack      uint16 = 0x5815

	VKPadLeftThumbPress  uint16 = 0x5816
	VKPadRightThumbPress uint16 = 0x5817

	VKPadLeftThumbUp        uint16 = 0x5820
	VKPadLeftThumbDown      uint16 = 0x5821
	VKPadLeftThumbRight     uint16 = 0x5822
	VKPadLeftThumbLeft      uint16 = 0x5823
	VKPadLeftThumbUpLeft    uint16 = 0x5824
	VKPadLeftThumbUpRight   uint16 = 0x5825
	VKPadLeftThumbDownRight uint16 = 0x5826
	VKPadLeftThumbDownLeft  uint16 = 0x5827

	VKPadRightThumbUp        uint16 = 0x5830
	VKPadRightThumbDown      uint16 = 0x5831
	VKPadRightThumbRight     uint16 = 0x5832
	VKPadRightThumbLeft      uint16 = 0x5833
	VKPadRightThumbUpLeft    uint16 = 0x5834
	VKPadRightThumbUpRight   uint16 = 0x5835
	VKPadRightThumbDownRight uint16 = 0x5836
	VKPadRightThumbDownLeft  uint16 = 0x5837
)

var keyNames = map[uint16]string{
	VKPadA:             "A",
	VKPadB:             "B",
	VKPadX:             "X",
	VKPadY:             "Y",
	VKPadRightShoulder: "RightShoulder",
	VKPadLeftShoulder:  "LeftShoulder",
	VKPadLeftTrigger:   "LeftTrigger",
	VKPadRightTrigger:  "RightTrigger",

	VKPadDpadUp:    "DpadUp",
	VKPadDpadDown:  "DpadDown",
	VKPadDpadLeft:  "DpadLeft",
	VKPadDpadRight: "DpadRight",
	VKPadStart:     "Start",
	VKPadBack:      "Back",

	VKPadLeftThumbPress:  "LeftThumbPress",
	VKPadRightThumbPress: "RightThumbPress",

	VKPadLeftThumbUp:        "LeftThumbUp",
	VKPadLeftThumbDown:      "LeftThumbDown",
	VKPadLeftThumbRight:     "LeftThumbRight",
	VKPadLeftThumbLeft:      "LeftThumbLeft",
	VKPadLeftThumbUpLeft:    "LeftThumbUpLeft",
	VKPadLeftThumbUpRight:   "LeftThumbUpRight",
	VKPadLeftThumbDownRight: "LeftThumbDownRight",
	VKPadLeftThumbDownLeft:  "LeftThumbDownLeft",

	VKPadRightThumbUp:        "RightThumbUp",
	VKPadRightThumbDown:      "RightThumbDown",
	VKPadRightThumbRight:     "RightThumbRight",
	VKPadRightThumbLeft:      "RightThumbLeft",
	VKPadRightThumbUpLeft:    "RightThumbUpLeft",
	VKPadRightThumbUpRight:   "RightThumbUpRight",
	VKPadRightThumbDownRight: "RightThumbDownRight",
	VKPadRightThumbDownLeft:  "RightThumbDownLeft",
}

// KeyName returns a readable name for a gamepad virtual key code, or an
// empty string for codes outside the gamepad range.
func KeyName(vk uint16) string {
	return keyNames[vk]
}
