// Package printer sends raw ESC/POS data to thermal receipt printers.
package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer is the interface for sending raw ESC/POS data to a printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// IsConnected returns true if the printer is reachable.
	IsConnected() bool
}

// devicePrinter writes to a printer device file, e.g. /dev/usb/lp0.
type devicePrinter struct {
	path string
}

// NewDevicePrinter creates a printer that writes to a USB device file.
func NewDevicePrinter(path string) Printer {
	return &devicePrinter{path: path}
}

func (p *devicePrinter) Print(data []byte) error {
	// Opened per print job; the device file stays free between bills.
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to device %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// netPrinter dials a raw-socket printer, e.g. 192.168.1.50:9100.
type netPrinter struct {
	address     string
	dialTimeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP. The address
// must include the port, e.g. "192.168.1.50:9100".
func NewNetworkPrinter(address string) Printer {
	return &netPrinter{
		address:     address,
		dialTimeout: 5 * time.Second,
	}
}

func (p *netPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *netPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// nopPrinter discards everything; used when no hardware is configured.
type nopPrinter struct{}

// NewNopPrinter creates a no-op printer for environments without hardware.
func NewNopPrinter() Printer {
	return nopPrinter{}
}

func (nopPrinter) Print(data []byte) error { return nil }
func (nopPrinter) IsConnected() bool       { return false }

// NewFromConfig creates the appropriate Printer for the configured type:
// "usb" (device file), "network" (TCP), or "none".
func NewFromConfig(printerType, devicePath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if devicePath == "" {
			return nil, fmt.Errorf("printer: device path is required for USB printer type")
		}
		return NewDevicePrinter(devicePath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNopPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
