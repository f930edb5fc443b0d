package serial

import "time"

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
	ParityMark
	ParitySpace
)

// StopBits represents the stop bit setting
type StopBits int

const (
	StopBits1 StopBits = iota
	StopBits1Half
	StopBits2
)

// Config holds the configuration for a serial port
type Config struct {
	BaudRate    int
	DataBits    int
	StopBits    StopBits
	Parity      Parity
	ReadTimeout time.Duration // fixed wait before draining the input buffer
}

// Option is a functional option for configuring a serial port
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults (9600 8N1)
func DefaultConfig() Config {
	return Config{
		BaudRate:    9600,
		DataBits:    8,
		StopBits:    StopBits1,
		Parity:      ParityNone,
		ReadTimeout: time.Second,
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if _, err := getBaudRate(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits int) Option {
	return func(c *Config) error {
		if bits < 5 || bits > 8 {
			return ErrInvalidDataBits
		}
		c.DataBits = bits
		return nil
	}
}

// WithStopBits sets the number of stop bits
func WithStopBits(bits StopBits) Option {
	return func(c *Config) error {
		switch bits {
		case StopBits1, StopBits1Half, StopBits2:
			c.StopBits = bits
			return nil
		}
		return ErrInvalidStopBits
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(c *Config) error {
		switch parity {
		case ParityNone, ParityEven, ParityOdd, ParityMark, ParitySpace:
			c.Parity = parity
			return nil
		}
		return ErrInvalidParity
	}
}

// WithReadTimeout sets the wait before the input buffer is drained
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return ErrInvalidConfig
		}
		c.ReadTimeout = timeout
		return nil
	}
}

// ParseParity converts a single-letter parity designator (N, E, O, M, S)
func ParseParity(s string) (Parity, error) {
	switch s {
	case "N":
		return ParityNone, nil
	case "E":
		return ParityEven, nil
	case "O":
		return ParityOdd, nil
	case "M":
		return ParityMark, nil
	case "S":
		return ParitySpace, nil
	}
	return ParityNone, ErrInvalidParity
}

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "N"
	case ParityEven:
		return "E"
	case ParityOdd:
		return "O"
	case ParityMark:
		return "M"
	case ParitySpace:
		return "S"
	}
	return "?"
}

// ParseStopBits converts a stop bit designator ("1", "1.5", "2")
func ParseStopBits(s string) (StopBits, error) {
	switch s {
	case "1":
		return StopBits1, nil
	case "1.5":
		return StopBits1Half, nil
	case "2":
		return StopBits2, nil
	}
	return StopBits1, ErrInvalidStopBits
}

func (s StopBits) String() string {
	switch s {
	case StopBits1:
		return "1"
	case StopBits1Half:
		return "1.5"
	case StopBits2:
		return "2"
	}
	return "?"
}

// SupportedParities returns the parity designators accepted by ParseParity
func SupportedParities() []string {
	return []string{"N", "E", "O", "M", "S"}
}

// SupportedStopBits returns the stop bit designators accepted by ParseStopBits
func SupportedStopBits() []string {
	return []string{"1", "1.5", "2"}
}
