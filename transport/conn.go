package transport

import (
	"io"
	"time"

	"periph.io/x/conn/v3"
)

// FromConn adapts a periph.io connection to a Channel.
//
// Writes are sent as a write-only transaction and reads as a read-only
// transaction that fills the whole buffer. A read that does not complete
// within timeout fails with ErrTimeout; timeout <= 0 selects ReadTimeout.
// closer may be nil when the connection does not own a resource.
func FromConn(c conn.Conn, closer io.Closer, timeout time.Duration) Channel {
	if timeout <= 0 {
		timeout = ReadTimeout
	}
	return &connChannel{c: c, closer: closer, timeout: timeout}
}

type connChannel struct {
	c       conn.Conn
	closer  io.Closer
	timeout time.Duration
	closed  bool
}

func (c *connChannel) Write(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	if err := c.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read runs the transaction on its own buffer so a transaction still pending
// after a timeout never writes into p. It is released by Close.
func (c *connChannel) Read(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	buf := make([]byte, len(p))
	done := make(chan error, 1)
	go func() {
		done <- c.c.Tx(nil, buf)
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case err := <-done:
		if err != nil {
			return 0, err
		}
		return copy(p, buf), nil
	case <-timer.C:
		return 0, ErrTimeout
	}
}

func (c *connChannel) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
