package ledmatrix

import "testing"

func TestPatternNames(t *testing.T) {
	for p := PatternPercentage; p <= PatternDisplayLotus2; p++ {
		got, err := ParsePattern(p.String())
		if err != nil {
			t.Fatalf("ParsePattern(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePattern(%q) = %d, want %d", p.String(), got, p)
		}
	}
	if got := PatternZigZag.String(); got != "zig_zag" {
		t.Errorf("PatternZigZag.String() = %q", got)
	}
	if got := Pattern(8).String(); got != "Pattern(8)" {
		t.Errorf("Pattern(8).String() = %q", got)
	}
}

func TestParseNames(t *testing.T) {
	if g, err := ParseGame(" Game_Of_Life "); err != nil || g != GameGameOfLife {
		t.Errorf("ParseGame() = %v, %v", g, err)
	}
	if l, err := ParseLifeStart("glider"); err != nil || l != LifeGlider {
		t.Errorf("ParseLifeStart() = %v, %v", l, err)
	}
	if c, err := ParseControl("right2"); err != nil || c != ControlRight2 {
		t.Errorf("ParseControl() = %v, %v", c, err)
	}

	tests := []struct {
		name  string
		parse func(string) error
	}{
		{"pattern", func(s string) error { _, err := ParsePattern(s); return err }},
		{"game", func(s string) error { _, err := ParseGame(s); return err }},
		{"life start", func(s string) error { _, err := ParseLifeStart(s); return err }},
		{"control", func(s string) error { _, err := ParseControl(s); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parse("bogus"); err == nil {
				t.Error("expected error for unknown name")
			}
		})
	}
}

func TestEnumValues(t *testing.T) {
	tests := []struct {
		name string
		got  byte
		want byte
	}{
		{"tetris", byte(GameTetris), 0x02},
		{"display panic", byte(PatternDisplayPanic), 0x06},
		{"beacon", byte(LifeBeacon), 0x04},
		{"quit", byte(ControlQuit), 4},
		{"left2", byte(ControlLeft2), 5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if got := Control(9).String(); got != "Control(9)" {
		t.Errorf("Control(9).String() = %q", got)
	}
}
