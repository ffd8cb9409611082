package protocol

import "fmt"

// ResponseSize is the fixed size of a response read.
const ResponseSize = 32

// VersionSize is the number of meaningful bytes in a VERSION response.
const VersionSize = 3

// FirmwareVersion is the decoded answer to a VERSION command.
type FirmwareVersion struct {
	Major      uint8
	Minor      uint8
	Patch      uint8
	Prerelease bool
}

// String formats the version as "major.minor.patch", with a "-pre" suffix for
// prerelease builds.
func (v FirmwareVersion) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease {
		s += "-pre"
	}
	return s
}

// DecodeVersion decodes the first VersionSize bytes of a VERSION response.
//
// Byte 0 is the major version, byte 1 packs minor (high nibble) and patch (low
// nibble) and bit 0 of byte 2 flags a prerelease.
func DecodeVersion(resp []byte) FirmwareVersion {
	return FirmwareVersion{
		Major:      resp[0],
		Minor:      resp[1] >> 4,
		Patch:      resp[1] & 0x0F,
		Prerelease: resp[2]&0x01 != 0,
	}
}

// DecodeByte returns the single-byte value of a response, e.g. a brightness level.
func DecodeByte(resp []byte) uint8 {
	return resp[0]
}

// DecodeBool returns the single-byte flag of a response (SLEEP, ANIMATE).
func DecodeBool(resp []byte) bool {
	return resp[0] != 0
}

// EncodeBool is the parameter byte for a boolean setter.
func EncodeBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}
