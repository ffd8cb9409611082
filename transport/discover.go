package transport

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// USB identifiers of the LED matrix input module.
const (
	VendorID  = "32AC"
	ProductID = "0020"
)

// Port describes a serial port found by Discover.
type Port struct {
	// Name is the identifier to pass to an Opener, e.g. /dev/ttyACM0 or COM3.
	Name         string
	SerialNumber string
	Product      string
}

// portLister is replaced in tests.
var portLister = enumerator.GetDetailedPortsList

// Discover returns the USB serial ports whose VID:PID match the LED matrix module.
func Discover() ([]Port, error) {
	return discover(VendorID, ProductID)
}

func discover(vid, pid string) ([]Port, error) {
	details, err := portLister()
	if err != nil {
		return nil, fmt.Errorf("transport: enumerate ports: %w", err)
	}
	var ports []Port
	for _, d := range details {
		if !d.IsUSB || !strings.EqualFold(d.VID, vid) || !strings.EqualFold(d.PID, pid) {
			continue
		}
		ports = append(ports, Port{
			Name:         d.Name,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}
	return ports, nil
}
