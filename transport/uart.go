package transport

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
)

// UART opens ports registered in the periph.io uartreg registry. No periph.io
// host driver registers UART ports, so the application or a board driver
// has to call uartreg.Register first.
//
// Reads are bounded by ReadTimeout like the other transports.
type UART struct {
	cfg Config
}

// NewUART returns a UART opener. Zero fields of cfg take their default value.
func NewUART(cfg Config) *UART {
	return &UART{cfg: cfg.withDefaults()}
}

// Open opens the registered port called name ("" selects the first port) and
// connects to it as 8N1 without flow control.
func (u *UART) Open(name string) (Channel, error) {
	p, err := uartreg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("transport: open %q: %w", name, err)
	}
	c, err := p.Connect(physic.Frequency(u.cfg.BaudRate)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("transport: connect %s: %w", p, err)
	}
	return FromConn(c, p, u.cfg.ReadTimeout), nil
}

func (u *UART) String() string {
	return fmt.Sprintf("uart(%d baud)", u.cfg.BaudRate)
}
