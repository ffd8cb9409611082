package transport

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
)

// Serial opens channels with go.bug.st/serial. It works on Linux, macOS and
// Windows and is the default opener of the driver.
type Serial struct {
	cfg Config
}

// NewSerial returns a Serial opener. Zero fields of cfg take their default value.
func NewSerial(cfg Config) *Serial {
	return &Serial{cfg: cfg.withDefaults()}
}

// Open opens and configures the serial port at path (e.g. /dev/ttyACM0 or COM3)
// as 8N1 at the configured baud rate.
func (s *Serial) Open(path string) (Channel, error) {
	mode := &serial.Mode{
		BaudRate: s.cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, withErrno(err))
	}
	if err := port.SetReadTimeout(s.cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("transport: configure %s: %w", path, withErrno(err))
	}
	return &serialChannel{port: port}, nil
}

func (s *Serial) String() string {
	return fmt.Sprintf("serial(%d baud)", s.cfg.BaudRate)
}

type serialChannel struct {
	port serial.Port
}

func (c *serialChannel) Write(p []byte) (int, error) {
	n, err := c.port.Write(p)
	if err != nil {
		return n, fmt.Errorf("transport: write: %w", withErrno(err))
	}
	return n, nil
}

// Read returns ErrTimeout when the port read timeout expires with no data;
// go.bug.st/serial reports that case as (0, nil).
func (c *serialChannel) Read(p []byte) (int, error) {
	n, err := c.port.Read(p)
	if err != nil {
		return n, fmt.Errorf("transport: read: %w", withErrno(err))
	}
	if n == 0 && len(p) > 0 {
		return 0, ErrTimeout
	}
	return n, nil
}

func (c *serialChannel) Close() error {
	return c.port.Close()
}

// withErrno appends the native status matching a go.bug.st/serial error code
// to err. serial.PortError does not unwrap to the OS error it was built from.
func withErrno(err error) error {
	var pe *serial.PortError
	if !errors.As(err, &pe) {
		return err
	}
	errno, ok := portErrnos[pe.Code()]
	if !ok {
		return err
	}
	return fmt.Errorf("%w: %w", err, errno)
}
