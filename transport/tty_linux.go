//go:build linux

package transport

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// TTY opens the module's tty directly with termios, without any third-party
// serial layer. Reads use the kernel VMIN/VTIME timer: VMIN=0 and VTIME set
// to the read timeout in tenths of a second, so a read returns as soon as
// one byte is available or after the timeout with zero bytes.
type TTY struct {
	cfg Config
}

// NewTTY returns a TTY opener. Zero fields of cfg take their default value.
func NewTTY(cfg Config) *TTY {
	return &TTY{cfg: cfg.withDefaults()}
}

// Open opens the tty at path in raw 8N1 mode.
func (t *TTY) Open(path string) (Channel, error) {
	speed, ok := baudRates[t.cfg.BaudRate]
	if !ok {
		return nil, fmt.Errorf("transport: unsupported baud rate %d", t.cfg.BaudRate)
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, err)
	}

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("transport: get termios: %w", err)
	}

	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF | unix.IXANY
	termios.Oflag &^= unix.OPOST
	termios.Cflag &^= unix.CSIZE | unix.PARENB | unix.PARODD | unix.CSTOPB | unix.CBAUD
	termios.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL | speed
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Ispeed = speed
	termios.Ospeed = speed
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = vtime(t.cfg.ReadTimeout)

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("transport: set termios: %w", err)
	}

	return &ttyChannel{fd: fd}, nil
}

func (t *TTY) String() string {
	return fmt.Sprintf("tty(%d baud)", t.cfg.BaudRate)
}

var baudRates = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
	460800: unix.B460800,
	921600: unix.B921600,
}

// vtime converts d into termios deciseconds, clamped to 1..255.
func vtime(d time.Duration) uint8 {
	ds := (d + 99*time.Millisecond) / (100 * time.Millisecond)
	switch {
	case ds < 1:
		return 1
	case ds > 255:
		return 255
	}
	return uint8(ds)
}

type ttyChannel struct {
	mu     sync.Mutex
	fd     int
	closed bool
}

func (c *ttyChannel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	n, err := unix.Write(c.fd, p)
	if n < 0 {
		n = 0
	}
	if err != nil {
		return n, fmt.Errorf("transport: write: %w", err)
	}
	return n, nil
}

func (c *ttyChannel) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	for {
		n, err := unix.Read(c.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("transport: read: %w", err)
		}
		if n == 0 && len(p) > 0 {
			return 0, ErrTimeout
		}
		return n, nil
	}
}

func (c *ttyChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return unix.Close(c.fd)
}
