// Package transporttest provides a scripted transport.Opener for tests.
package transporttest

import (
	"sync"

	"github.com/flavioheleno/ledmatrix/transport"
)

// Mock implements transport.Opener. Every channel it opens records the frames
// written to it and serves reads from Responses, in order.
//
// The exported fields may be set before use and inspected afterwards.
type Mock struct {
	mu sync.Mutex

	// Responses are consumed one per Read. A Read with no response left times out.
	Responses [][]byte

	// OpenErr, when set, is returned by Open.
	OpenErr error
	// ReadErr, when set, is returned by every Read.
	ReadErr error
	// Timeout makes every Read return transport.ErrTimeout.
	Timeout bool
	// FailWrite, when set, is called before each write with the 0-based write
	// index; a non-nil result fails that write.
	FailWrite func(index int, frame []byte) error

	// Frames holds a copy of each successfully written frame.
	Frames [][]byte
	// Identifiers holds the identifier of each Open call.
	Identifiers []string
	// Opens, Closes and Reads count calls.
	Opens  int
	Closes int
	Reads  int

	writes int
}

// Open implements transport.Opener.
func (m *Mock) Open(identifier string) (transport.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Identifiers = append(m.Identifiers, identifier)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	m.Opens++
	return &channel{m: m}, nil
}

// Balanced reports whether every opened channel has been closed.
func (m *Mock) Balanced() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Opens == m.Closes
}

type channel struct {
	m      *Mock
	closed bool
}

func (c *channel) Write(p []byte) (int, error) {
	m := c.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.closed {
		return 0, transport.ErrClosed
	}
	idx := m.writes
	m.writes++
	if m.FailWrite != nil {
		if err := m.FailWrite(idx, p); err != nil {
			return 0, err
		}
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	m.Frames = append(m.Frames, frame)
	return len(p), nil
}

func (c *channel) Read(p []byte) (int, error) {
	m := c.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.closed {
		return 0, transport.ErrClosed
	}
	m.Reads++
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if m.Timeout || len(m.Responses) == 0 {
		return 0, transport.ErrTimeout
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return copy(p, resp), nil
}

func (c *channel) Close() error {
	m := c.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	m.Closes++
	return nil
}
