package ledmatrix

import (
	"fmt"
	"strings"
)

// Pattern selects one of the built-in firmware patterns.
type Pattern byte

// Built-in patterns for DisplayPattern.
const (
	PatternPercentage     Pattern = 0x00
	PatternGradient       Pattern = 0x01
	PatternDoubleGradient Pattern = 0x02
	PatternDisplayLotus   Pattern = 0x03
	PatternZigZag         Pattern = 0x04
	PatternFullBrightness Pattern = 0x05
	PatternDisplayPanic   Pattern = 0x06
	PatternDisplayLotus2  Pattern = 0x07
)

var patternNames = []string{
	"percentage",
	"gradient",
	"double_gradient",
	"display_lotus",
	"zig_zag",
	"full_brightness",
	"display_panic",
	"display_lotus_2",
}

// String returns the snake_case name of the pattern.
func (p Pattern) String() string {
	return enumName(patternNames, byte(p), "Pattern")
}

// ParsePattern returns the pattern with the given name, e.g. "zig_zag".
func ParsePattern(name string) (Pattern, error) {
	v, err := parseEnum(patternNames, name, "pattern")
	return Pattern(v), err
}

// Game selects one of the games built into the firmware.
type Game byte

// Games for StartGame.
const (
	GameSnake      Game = 0x00
	GamePong       Game = 0x01
	GameTetris     Game = 0x02
	GameGameOfLife Game = 0x03
)

var gameNames = []string{"snake", "pong", "tetris", "game_of_life"}

// String returns the snake_case name of the game.
func (g Game) String() string {
	return enumName(gameNames, byte(g), "Game")
}

// ParseGame returns the game with the given name, e.g. "pong".
func ParseGame(name string) (Game, error) {
	v, err := parseEnum(gameNames, name, "game")
	return Game(v), err
}

// LifeStart is the initial board of GameGameOfLife, passed as the extra
// StartGame parameter.
type LifeStart byte

// Start boards for GameGameOfLife.
const (
	LifeCurrentMatrix LifeStart = 0x00
	LifePattern1      LifeStart = 0x01
	LifeBlinker       LifeStart = 0x02
	LifeToad          LifeStart = 0x03
	LifeBeacon        LifeStart = 0x04
	LifeGlider        LifeStart = 0x05
)

var lifeStartNames = []string{"current_matrix", "pattern_1", "blinker", "toad", "beacon", "glider"}

// String returns the snake_case name of the start board.
func (l LifeStart) String() string {
	return enumName(lifeStartNames, byte(l), "LifeStart")
}

// ParseLifeStart returns the start board with the given name, e.g. "glider".
func ParseLifeStart(name string) (LifeStart, error) {
	v, err := parseEnum(lifeStartNames, name, "game of life start")
	return LifeStart(v), err
}

// Control is a key press forwarded to a running game.
type Control byte

// Key presses for GameControl.
const (
	ControlUp     Control = 0
	ControlDown   Control = 1
	ControlLeft   Control = 2
	ControlRight  Control = 3
	ControlQuit   Control = 4
	ControlLeft2  Control = 5
	ControlRight2 Control = 6
)

var controlNames = []string{"up", "down", "left", "right", "quit", "left2", "right2"}

// String returns the snake_case name of the control.
func (c Control) String() string {
	return enumName(controlNames, byte(c), "Control")
}

// ParseControl returns the control with the given name, e.g. "left2".
func ParseControl(name string) (Control, error) {
	v, err := parseEnum(controlNames, name, "game control")
	return Control(v), err
}

// enumName looks v up in names, which is indexed by value.
func enumName(names []string, v byte, typ string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func parseEnum(names []string, name, what string) (byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return byte(i), nil
		}
	}
	return 0, fmt.Errorf("ledmatrix: unknown %s %q", what, name)
}
