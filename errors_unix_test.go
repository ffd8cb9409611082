//go:build unix

package ledmatrix

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestErrnoCodes(t *testing.T) {
	err := fmt.Errorf("transport: open /dev/ttyACM0: %w", unix.EACCES)
	assert.Equal(t, Code(unix.EACCES), CodeOf(err))
	assert.Equal(t, "errno: EACCES: "+unix.EACCES.Error(), Describe(err))

	assert.Equal(t, Code(unix.ETIMEDOUT), timeoutCode)
	assert.Equal(t, "errno: ETIMEDOUT: "+unix.ETIMEDOUT.Error(), FormatCode(timeoutCode))

	assert.True(t, strings.HasPrefix(FormatCode(4000), "errno: 4000: "))
}

func TestSerialOpenStatus(t *testing.T) {
	dev, err := New("/dev/null", nil)
	require.NoError(t, err)

	err = dev.SetBrightness(1)
	assert.Equal(t, Code(unix.ENOTTY), CodeOf(err))
	assert.True(t, strings.HasPrefix(Describe(err), "errno: ENOTTY: "), Describe(err))
}
