// Package transport opens byte channels to the LED matrix module.
//
// The driver never keeps a connection open between commands: each command
// opens a Channel, writes one frame, optionally reads one response and closes
// the Channel again. An Opener is the factory for those channels and hides how
// the device identifier is interpreted (a tty path on Linux and macOS, "COM3"
// on Windows, a periph.io registry name, ...).
//
// Available openers:
//
//	Serial  go.bug.st/serial, works on every supported OS (default)
//	TTY     raw termios through golang.org/x/sys/unix, Linux only
//	UART    ports registered in periph.io/x/conn/v3/uart/uartreg
//
// A Channel read that receives nothing before the configured deadline returns
// ErrTimeout, which callers can tell apart from genuine I/O failures.
//
// Discover lists the USB serial ports that look like an LED matrix module:
//
//	ports, err := transport.Discover()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range ports {
//		fmt.Println(p.Name, p.SerialNumber)
//	}
package transport
