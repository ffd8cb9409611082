package transporttest

import (
	"errors"
	"testing"

	"github.com/flavioheleno/ledmatrix/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock(t *testing.T) {
	m := &Mock{Responses: [][]byte{{1, 2}}}
	var o transport.Opener = m

	ch, err := o.Open("a")
	require.NoError(t, err)
	frame := []byte{0x32, 0xAC, 0x20}
	n, err := ch.Write(frame)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	frame[2] = 0
	assert.Equal(t, [][]byte{{0x32, 0xAC, 0x20}}, m.Frames)

	buf := make([]byte, 32)
	n, err = ch.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = ch.Read(buf)
	assert.ErrorIs(t, err, transport.ErrTimeout)

	assert.False(t, m.Balanced())
	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())
	assert.True(t, m.Balanced())
	_, err = ch.Write(frame)
	assert.ErrorIs(t, err, transport.ErrClosed)
	assert.Equal(t, []string{"a"}, m.Identifiers)
	assert.Equal(t, 2, m.Reads)
}

func TestMockFailures(t *testing.T) {
	boom := errors.New("boom")
	m := &Mock{OpenErr: boom}
	_, err := m.Open("b")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, m.Opens)

	m = &Mock{FailWrite: func(i int, _ []byte) error {
		if i == 1 {
			return boom
		}
		return nil
	}}
	ch, err := m.Open("c")
	require.NoError(t, err)
	_, err = ch.Write([]byte{1})
	require.NoError(t, err)
	_, err = ch.Write([]byte{2})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, m.Frames, 1)

	m.ReadErr = boom
	_, err = ch.Read(make([]byte, 1))
	assert.ErrorIs(t, err, boom)
}
