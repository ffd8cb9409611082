package protocol

import "errors"

// Magic is the fixed two-byte preamble of every frame.
var Magic = [2]byte{0x32, 0xAC}

// HeaderSize is the number of bytes before the parameters: magic + opcode.
const HeaderSize = 3

var (
	// ErrShortFrame is returned by Decode for frames without a complete header.
	ErrShortFrame = errors.New("protocol: frame shorter than header")
	// ErrBadMagic is returned by Decode when the preamble does not match Magic.
	ErrBadMagic = errors.New("protocol: bad magic")
)

// Encode builds the frame for cmd with params appended verbatim.
//
// The parameter count is not validated against the opcode; that is up to the
// caller.
func Encode(cmd Command, params []byte) []byte {
	frame := make([]byte, 0, HeaderSize+len(params))
	frame = append(frame, Magic[0], Magic[1], byte(cmd))
	frame = append(frame, params...)
	return frame
}

// Decode splits a frame into its opcode and parameters.
// The returned params slice aliases frame.
func Decode(frame []byte) (Command, []byte, error) {
	if len(frame) < HeaderSize {
		return 0, nil, ErrShortFrame
	}
	if frame[0] != Magic[0] || frame[1] != Magic[1] {
		return 0, nil, ErrBadMagic
	}
	return Command(frame[2]), frame[HeaderSize:], nil
}
