package protocol

import "fmt"

// Command is the opcode byte of a frame.
type Command byte

// Opcodes understood by the module firmware.
const (
	Brightness       Command = 0x00
	Pattern          Command = 0x01
	BootloaderReset  Command = 0x02
	Sleep            Command = 0x03
	Animate          Command = 0x04
	Panic            Command = 0x05
	Draw             Command = 0x06
	StageCol         Command = 0x07
	CommitCol        Command = 0x08
	SetText          Command = 0x09
	StartGame        Command = 0x10
	GameControl      Command = 0x11
	GameStatus       Command = 0x12
	SetColor         Command = 0x13
	DisplayOn        Command = 0x14
	InvertScreen     Command = 0x15
	SetPixelColumn   Command = 0x16
	FlushFrameBuffer Command = 0x17
	ClearRAM         Command = 0x18
	ScreenSaver      Command = 0x19
	SetFPS           Command = 0x1A
	SetPowerMode     Command = 0x1B
	PWMFreq          Command = 0x1E
	DebugMode        Command = 0x1F
	Version          Command = 0x20
)

var commandNames = map[Command]string{
	Brightness:       "BRIGHTNESS",
	Pattern:          "PATTERN",
	BootloaderReset:  "BOOTLOADER_RESET",
	Sleep:            "SLEEP",
	Animate:          "ANIMATE",
	Panic:            "PANIC",
	Draw:             "DRAW",
	StageCol:         "STAGE_COL",
	CommitCol:        "COMMIT_COL",
	SetText:          "SET_TEXT",
	StartGame:        "START_GAME",
	GameControl:      "GAME_CONTROL",
	GameStatus:       "GAME_STATUS",
	SetColor:         "SET_COLOR",
	DisplayOn:        "DISPLAY_ON",
	InvertScreen:     "INVERT_SCREEN",
	SetPixelColumn:   "SET_PIXEL_COLUMN",
	FlushFrameBuffer: "FLUSH_FRAME_BUFFER",
	ClearRAM:         "CLEAR_RAM",
	ScreenSaver:      "SCREEN_SAVER",
	SetFPS:           "SET_FPS",
	SetPowerMode:     "SET_POWER_MODE",
	PWMFreq:          "PWM_FREQ",
	DebugMode:        "DEBUG_MODE",
	Version:          "VERSION",
}

// String returns the firmware name of the opcode, e.g. "STAGE_COL".
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}

// Known reports whether c is one of the documented opcodes.
func (c Command) Known() bool {
	_, ok := commandNames[c]
	return ok
}

// ParseCommand returns the opcode with the given firmware name.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("protocol: unknown command %q", name)
}
