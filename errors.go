package ledmatrix

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/ledmatrix/pixmap"
	"github.com/flavioheleno/ledmatrix/transport"
)

// Code is a numeric error status. Codes <= 0 originate in this package, codes
// > 0 are native statuses reported by the operating system while talking to
// the module (errno on unix, GetLastError values on windows).
type Code int

// Library status codes.
const (
	Success                Code = 0
	CodeError              Code = -1
	CodeXOutOfBounds       Code = -2
	CodeYOutOfBounds       Code = -3
	CodeExtraParamRequired Code = -4
	CodeTooManyParams      Code = -5
)

var (
	// ErrXOutOfBounds is returned when an x coordinate falls outside the matrix.
	ErrXOutOfBounds = pixmap.ErrXOutOfBounds
	// ErrYOutOfBounds is returned when a y coordinate falls outside the matrix.
	ErrYOutOfBounds = pixmap.ErrYOutOfBounds
	// ErrExtraParamRequired is returned by StartGame when the game needs a
	// start parameter and none was given.
	ErrExtraParamRequired = errors.New("ledmatrix: game requires an extra parameter")
	// ErrTooManyParams is returned by StartGame when it got a parameter the
	// game does not take.
	ErrTooManyParams = errors.New("ledmatrix: too many parameters")
)

var libraryMessages = map[Code]string{
	Success:                "success",
	CodeError:              "unspecified error",
	CodeXOutOfBounds:       "x coordinate out of bounds",
	CodeYOutOfBounds:       "y coordinate out of bounds",
	CodeExtraParamRequired: "extra parameter required",
	CodeTooManyParams:      "too many parameters",
}

var sentinelCodes = []struct {
	err  error
	code Code
}{
	{ErrXOutOfBounds, CodeXOutOfBounds},
	{ErrYOutOfBounds, CodeYOutOfBounds},
	{ErrExtraParamRequired, CodeExtraParamRequired},
	{ErrTooManyParams, CodeTooManyParams},
}

// CodeOf returns the status code carried by err.
//
// nil maps to Success, the package sentinels to their library code, a read
// timeout to the platform timeout status and a native OS error found in the
// chain to its value. Anything else is CodeError.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	if errors.Is(err, transport.ErrTimeout) {
		return timeoutCode
	}
	if c, ok := platformCode(err); ok && c > 0 {
		return c
	}
	return CodeError
}

// FormatCode returns a diagnostic string for code, prefixed by its origin:
// "library: " for codes <= 0, a platform tag otherwise.
func FormatCode(code Code) string {
	if code > 0 {
		return formatPlatform(code)
	}
	if msg, ok := libraryMessages[code]; ok {
		return "library: " + msg
	}
	return fmt.Sprintf("library: unknown error %d", int(code))
}

// Describe is FormatCode(CodeOf(err)).
func Describe(err error) string {
	return FormatCode(CodeOf(err))
}
