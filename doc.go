// Package ledmatrix controls a 9×34 LED matrix input module over its USB
// serial port.
//
// The module is driven with short binary frames: two magic bytes (0x32 0xAC),
// an opcode and its parameters. A few opcodes answer with a 32-byte response.
// The driver keeps a local copy of the pixels and pushes it to the module on
// request. It implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 9 columns × 34 rows, origin (0,0) top-left, (8,33) bottom-right
// - 8-bit intensity per pixel in greyscale mode
// - 1-bit mode with a global brightness (0-255)
// - Built-in patterns, games and sleep/animation modes
//
// # Hardware Connection
//
// The module enumerates as a USB CDC-ACM device (VID:PID 32AC:0020) and shows
// up as /dev/ttyACMx on Linux or COMx on Windows. transport.Discover lists the
// connected modules.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ledmatrix"
//	)
//
//	func main() {
//		dev, err := ledmatrix.New("/dev/ttyACM0", nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		v, err := dev.Version()
//		if err != nil {
//			log.Fatal(ledmatrix.Describe(err))
//		}
//		log.Printf("firmware %s", v)
//
//		// Draw a 5×5 gradient at (1,1)
//		block := [][]uint8{
//			{0, 10, 20, 30, 40},
//			{50, 60, 70, 80, 90},
//			{100, 110, 120, 130, 140},
//			{150, 160, 170, 180, 190},
//			{200, 210, 220, 230, 240},
//		}
//		if err := dev.Blit(block, 1, 1); err != nil {
//			log.Fatal(err)
//		}
//		if err := dev.DrawGreyscale(); err != nil {
//			log.Fatal(ledmatrix.Describe(err))
//		}
//	}
//
// # Transports
//
// Every command opens the port, writes its frame, optionally reads the
// response and closes the port. The link is chosen with Opts.Transport:
//
//	transport.NewSerial(cfg) // go.bug.st/serial, all platforms (default)
//	transport.NewTTY(cfg)    // raw termios, Linux only
//	transport.NewUART(cfg)   // ports registered with periph.io uartreg
//
// # Drawing Modes
//
// DrawBlackWhite sends the matrix as one 39-byte frame, lighting every
// non-zero pixel. DrawGreyscale sends the nine columns with their
// intensities, then a commit frame. It stops at the first failing frame; set
// Opts.StageRetries to resend failed frames instead.
//
// Draw renders any image.Image into the matrix and sends it in greyscale, so
// the golang.org/x/image and image/draw packages can be used to compose
// content. See the raster package for text and SVG helpers.
//
// # Errors
//
// Every error can be reduced to a Code with CodeOf: codes <= 0 come from this
// package (bounds and parameter checks), codes > 0 are native OS statuses,
// with a read timeout reported as ETIMEDOUT (ERROR_TIMEOUT on Windows).
// Describe formats an error for humans:
//
//	library: x coordinate out of bounds
//	errno: ETIMEDOUT: connection timed out
//	win32: This operation returned because the timeout period expired.
package ledmatrix
