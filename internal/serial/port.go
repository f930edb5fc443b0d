package serial

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// Port is an open serial port connection. A Port is owned by a single
// goroutine for its entire lifetime; the mutex only guards against a
// concurrent Close.
type Port struct {
	mu     sync.RWMutex
	fd     int
	device string
	config Config
	closed bool
}

// baudRates maps supported integer baud rates to their unix constants
var baudRates = map[int]uint32{
	50:      unix.B50,
	75:      unix.B75,
	110:     unix.B110,
	134:     unix.B134,
	150:     unix.B150,
	200:     unix.B200,
	300:     unix.B300,
	600:     unix.B600,
	1200:    unix.B1200,
	1800:    unix.B1800,
	2400:    unix.B2400,
	4800:    unix.B4800,
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

// getBaudRate converts an integer baud rate to the unix constant
func getBaudRate(rate int) (uint32, error) {
	b, ok := baudRates[rate]
	if !ok {
		return 0, ErrInvalidBaudRate
	}
	return b, nil
}

// SupportedBaudRates returns the set of baud rates accepted by WithBaudRate,
// in ascending order
func SupportedBaudRates() []int {
	rates := make([]int, 0, len(baudRates))
	for rate := range baudRates {
		rates = append(rates, rate)
	}
	sort.Ints(rates)
	return rates
}

// Open opens a serial port with the given device path and options
func Open(device string, opts ...Option) (*Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return OpenConfig(device, config)
}

// OpenConfig opens a serial port with an assembled configuration,
// sparing callers that already validated one a second option pass
func OpenConfig(device string, config Config) (*Port, error) {
	fd, err := unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, openError(device, err)
	}

	if err := configurePort(fd, config); err != nil {
		unix.Close(fd)
		return nil, err
	}

	return &Port{
		fd:     fd,
		device: device,
		config: config,
	}, nil
}

// openError maps open(2) errnos to the package sentinel errors
func openError(device string, err error) error {
	switch err {
	case unix.ENOENT, unix.ENODEV, unix.ENXIO:
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, device)
	case unix.EACCES, unix.EPERM:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, device)
	case unix.EBUSY:
		return fmt.Errorf("%w: %s", ErrDeviceInUse, device)
	}
	return fmt.Errorf("failed to open %s: %w", device, err)
}

// configurePort configures the serial port using clean unix package calls
func configurePort(fd int, config Config) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %v", err)
	}

	// Raw mode, no input/output/line processing
	termios.Cflag = unix.CREAD | unix.CLOCAL
	termios.Iflag = 0
	termios.Oflag = 0
	termios.Lflag = 0

	// Non-blocking reads: callers poll InputWaiting before reading
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0

	baudRate, err := getBaudRate(config.BaudRate)
	if err != nil {
		return err
	}
	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | baudRate
	termios.Ispeed = baudRate
	termios.Ospeed = baudRate

	switch config.DataBits {
	case 5:
		termios.Cflag |= unix.CS5
	case 6:
		termios.Cflag |= unix.CS6
	case 7:
		termios.Cflag |= unix.CS7
	case 8:
		termios.Cflag |= unix.CS8
	default:
		return ErrInvalidDataBits
	}

	switch config.StopBits {
	case StopBits1:
	case StopBits1Half:
		// CSTOPB with 5 data bits gives 1.5 stop bits on UART hardware
		if config.DataBits != 5 {
			return ErrInvalidStopBits
		}
		termios.Cflag |= unix.CSTOPB
	case StopBits2:
		termios.Cflag |= unix.CSTOPB
	}

	switch config.Parity {
	case ParityOdd:
		termios.Cflag |= unix.PARENB | unix.PARODD
	case ParityEven:
		termios.Cflag |= unix.PARENB
	case ParityMark:
		termios.Cflag |= unix.PARENB | unix.PARODD | unix.CMSPAR
	case ParitySpace:
		termios.Cflag |= unix.PARENB | unix.CMSPAR
	}

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("failed to set termios: %v", err)
	}

	return nil
}

// Device returns the device path the port was opened with
func (p *Port) Device() string {
	return p.device
}

// Config returns the configuration the port was opened with
func (p *Port) Config() Config {
	return p.config
}

// Close closes the serial port. Safe to call more than once; every call
// after the first is a no-op.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	err := unix.Close(p.fd)
	p.closed = true
	return err
}

// Read reads data from the serial port
func (p *Port) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	return unix.Read(p.fd, buf)
}

// Write writes the full byte sequence to the serial port
func (p *Port) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	written := 0
	for written < len(data) {
		n, err := unix.Write(p.fd, data[written:])
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// InputWaiting returns the number of bytes currently buffered in the
// input queue
func (p *Port) InputWaiting() (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	return unix.IoctlGetInt(p.fd, unix.TIOCINQ)
}

// Drain waits for the given fixed delay, then reads buffered input one
// byte at a time until the input queue is empty. The delay is the whole
// read strategy: the device is assumed to have finished responding by
// the time it elapses.
func (p *Port) Drain(timeout time.Duration) ([]byte, error) {
	time.Sleep(timeout)

	var out []byte
	buf := make([]byte, 1)
	for {
		waiting, err := p.InputWaiting()
		if err != nil {
			return out, err
		}
		if waiting == 0 {
			return out, nil
		}

		n, err := p.Read(buf)
		if err != nil {
			return out, err
		}
		if n > 0 {
			out = append(out, buf[0])
		}
	}
}

// FlushInput discards any unread input data
func (p *Port) FlushInput() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCIFLUSH)
}
