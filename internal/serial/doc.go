// Package serial provides the Linux serial port layer for the hex
// console: open and configure a port through termios, write raw bytes,
// poll the input queue and drain buffered replies.
//
// Open a port with functional options:
//
//	port, err := serial.Open("/dev/ttyUSB0",
//	    serial.WithBaudRate(115200),
//	    serial.WithParity(serial.ParityEven),
//	    serial.WithStopBits(serial.StopBits2),
//	)
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
// Every option validates its value against the set the layer supports;
// SupportedBaudRates, SupportedParities and SupportedStopBits enumerate
// those sets for CLI validation messages.
//
// Reads are poll-driven: the port is opened with VMIN=0/VTIME=0 and
// Drain sleeps a fixed delay before reading whatever the kernel has
// buffered (TIOCINQ), one byte at a time, until the queue is empty.
// There is no event-driven read path and no detection of truncated
// responses; the device is assumed done once the delay elapses.
//
// The library provides sentinel errors for robust error handling with
// errors.Is: ErrDeviceNotFound, ErrPermissionDenied, ErrDeviceInUse,
// ErrInvalidBaudRate, ErrInvalidParity, ErrInvalidStopBits,
// ErrInvalidConfig and ErrPortClosed.
//
// Linux only: mark/space parity relies on CMSPAR and 1.5 stop bits on
// the CSTOPB-with-5-data-bits UART convention.
package serial
