package transport

import (
	"errors"
	"io"
	"time"
)

// BaudRate is the line speed of the module's USB CDC-ACM port.
const BaudRate = 115200

// ReadTimeout is how long a response read waits before giving up.
const ReadTimeout = time.Second

var (
	// ErrTimeout is returned by Channel.Read when no byte arrived before the deadline.
	ErrTimeout = errors.New("transport: read timed out")
	// ErrClosed is returned when using a Channel after Close.
	ErrClosed = errors.New("transport: channel closed")
)

// Channel is an open duplex byte stream to the module.
type Channel interface {
	io.Reader
	io.Writer
	io.Closer
}

// Opener opens a Channel to the device named by identifier. The identifier is
// opaque to the caller; its syntax depends on the implementation.
type Opener interface {
	Open(identifier string) (Channel, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(identifier string) (Channel, error)

// Open calls f(identifier).
func (f OpenerFunc) Open(identifier string) (Channel, error) {
	return f(identifier)
}

// Config holds the line settings shared by all openers.
type Config struct {
	// BaudRate is the line speed (default: 115200)
	BaudRate int

	// ReadTimeout bounds a single response read (default: 1s)
	ReadTimeout time.Duration
}

// DefaultConfig returns the settings the module firmware expects.
func DefaultConfig() Config {
	return Config{
		BaudRate:    BaudRate,
		ReadTimeout: ReadTimeout,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.BaudRate <= 0 {
		c.BaudRate = BaudRate
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = ReadTimeout
	}
	return c
}
