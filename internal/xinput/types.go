package xinput

// MaxControllers is the number of user slots the XInput runtime exposes.
const MaxControllers = 4

// State mirrors XINPUT_STATE. PacketNumber increases whenever the gamepad
// readout changes; an unchanged readout keeps the previous number.
type State struct {
	PacketNumber uint32
	Gamepad      Gamepad
}

// Gamepad mirrors XINPUT_GAMEPAD.
type Gamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// Keystroke mirrors XINPUT_KEYSTROKE, one queued button transition.
type Keystroke struct {
	VirtualKey uint16
	Unicode    uint16
	Flags      uint16
	UserIndex  uint8
	HidCode    uint8
}

// Battery mirrors XINPUT_BATTERY_INFORMATION.
type Battery struct {
	Type  uint8
	Level uint8
}

// Vibration mirrors XINPUT_VIBRATION. Motor speeds run 0 to 65535.
type Vibration struct {
	LeftMotor  uint16
	RightMotor uint16
}

// Capabilities mirrors XINPUT_CAPABILITIES.
type Capabilities struct {
	Type      uint8
	SubType   uint8
	Flags     uint16
	Gamepad   Gamepad
	Vibration Vibration
}

// Button bits reported in Gamepad.Buttons.
const (
	ButtonDpadUp        uint16 = 0x0001
	ButtonDpadDown      uint16 = 0x0002
	ButtonDpadLeft      uint16 = 0x0004
	ButtonDpadRight     uint16 = 0x0008
	ButtonStart         uint16 = 0x0010
	ButtonBack          uint16 = 0x0020
	ButtonLeftThumb     uint16 = 0x0040
	ButtonRightThumb    uint16 = 0x0080
	ButtonLeftShoulder  uint16 = 0x0100
	ButtonRightShoulder uint16 = 0x0200
	ButtonA             uint16 = 0x1000
	ButtonB             uint16 = 0x2000
	ButtonX             uint16 = 0x4000
	ButtonY             uint16 = 0x8000
)

// Reference deadzones from the XInput headers, in raw units.
const (
	LeftThumbDeadzone  int16 = 7849
	RightThumbDeadzone int16 = 8689
	TriggerThreshold   uint8 = 30
)

// Device classes for GetBatteryInformation.
const (
	DevGamepad uint8 = 0x00
	DevHeadset uint8 = 0x01
)

// Battery types reported in Battery.Type.
const (
	BatteryDisconnected uint8 = 0x00
	BatteryWired        uint8 = 0x01
	BatteryAlkaline     uint8 = 0x02
	BatteryNimh         uint8 = 0x03
	BatteryUnknown      uint8 = 0xFF
)

// Battery charge levels reported in Battery.Level.
const (
	BatteryLevelEmpty  uint8 = 0x00
	BatteryLevelLow    uint8 = 0x01
	BatteryLevelMedium uint8 = 0x02
	BatteryLevelFull   uint8 = 0x03
)

// Keystroke flags. Repeat accompanies KeyDown while a button is held.
const (
	KeystrokeKeyDown uint16 = 0x0001
	KeystrokeKeyUp   uint16 = 0x0002
	KeystrokeRepeat  uint16 = 0x0004
)

// Capability device type and subtypes reported in Capabilities.
const (
	DevTypeGamepad uint8 = 0x01

	DevSubTypeUnknown     uint8 = 0x00
	DevSubTypeGamepad     uint8 = 0x01
	DevSubTypeWheel       uint8 = 0x02
	DevSubTypeArcadeStick uint8 = 0x03
	DevSubTypeFlightStick uint8 = 0x04
	DevSubTypeDancePad    uint8 = 0x05
	DevSubTypeGuitar      uint8 = 0x06
	DevSubTypeDrumKit     uint8 = 0x08
	DevSubTypeArcadePad   uint8 = 0x13
)

// Capability flags reported in Capabilities.Flags.
const (
	CapsFFBSupported   uint16 = 0x0001
	CapsWireless       uint16 = 0x0002
	CapsVoiceSupported uint16 = 0x0004
)
