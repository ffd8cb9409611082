//go:build !linux

package transport

import (
	"errors"
	"fmt"
)

// TTY is only available on Linux. Elsewhere Open always fails; use Serial.
type TTY struct {
	cfg Config
}

// NewTTY returns a TTY opener.
func NewTTY(cfg Config) *TTY {
	return &TTY{cfg: cfg.withDefaults()}
}

func (t *TTY) Open(path string) (Channel, error) {
	return nil, fmt.Errorf("transport: tty %s: %w", path, errors.ErrUnsupported)
}

func (t *TTY) String() string {
	return fmt.Sprintf("tty(%d baud)", t.cfg.BaudRate)
}
