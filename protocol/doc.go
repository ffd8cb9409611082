// Package protocol implements the command framing of the LED matrix module.
//
// Every command is a single frame written in one go:
//
//	[0x32][0xAC][OPCODE][PARAM_0]...[PARAM_N-1]
//
// The two magic bytes are fixed, the opcode selects the operation and the
// number of parameter bytes depends on the opcode. There is no length field and
// no checksum.
//
// Some commands make the module answer with a response. The host reads up to
// ResponseSize bytes; only the leading bytes are meaningful for a given command
// and the rest is padding:
//
//	VERSION     [MAJOR][MINOR<<4 | PATCH][PRERELEASE]
//	BRIGHTNESS  [LEVEL]
//	SLEEP       [0|1]
//	ANIMATE     [0|1]
//
// Decoders in this package do not check the response length. A short read is a
// transport failure and has to be reported as such before decoding.
package protocol
