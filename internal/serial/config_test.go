package serial

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 9600 {
		t.Errorf("Expected BaudRate 9600, got %d", config.BaudRate)
	}
	if config.DataBits != 8 {
		t.Errorf("Expected DataBits 8, got %d", config.DataBits)
	}
	if config.StopBits != StopBits1 {
		t.Errorf("Expected StopBits 1, got %v", config.StopBits)
	}
	if config.Parity != ParityNone {
		t.Errorf("Expected Parity None, got %v", config.Parity)
	}
	if config.ReadTimeout != time.Second {
		t.Errorf("Expected ReadTimeout 1s, got %v", config.ReadTimeout)
	}
}

func TestFunctionalOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(115200)(&config); err != nil {
		t.Errorf("WithBaudRate failed: %v", err)
	}
	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}

	if err := WithDataBits(7)(&config); err != nil {
		t.Errorf("WithDataBits failed: %v", err)
	}
	if config.DataBits != 7 {
		t.Errorf("Expected DataBits 7, got %d", config.DataBits)
	}

	if err := WithStopBits(StopBits2)(&config); err != nil {
		t.Errorf("WithStopBits failed: %v", err)
	}
	if config.StopBits != StopBits2 {
		t.Errorf("Expected StopBits 2, got %v", config.StopBits)
	}

	if err := WithParity(ParityEven)(&config); err != nil {
		t.Errorf("WithParity failed: %v", err)
	}
	if config.Parity != ParityEven {
		t.Errorf("Expected Parity Even, got %v", config.Parity)
	}

	if err := WithReadTimeout(500 * time.Millisecond)(&config); err != nil {
		t.Errorf("WithReadTimeout failed: %v", err)
	}
	if config.ReadTimeout != 500*time.Millisecond {
		t.Errorf("Expected ReadTimeout 500ms, got %v", config.ReadTimeout)
	}
}

func TestInvalidBaudRate(t *testing.T) {
	config := DefaultConfig()
	err := WithBaudRate(123456)(&config)
	if err != ErrInvalidBaudRate {
		t.Errorf("Expected ErrInvalidBaudRate, got %v", err)
	}
}

func TestInvalidDataBits(t *testing.T) {
	config := DefaultConfig()
	for _, bits := range []int{4, 9, 0, -1} {
		if err := WithDataBits(bits)(&config); err != ErrInvalidDataBits {
			t.Errorf("WithDataBits(%d): expected ErrInvalidDataBits, got %v", bits, err)
		}
	}
}

func TestNegativeReadTimeout(t *testing.T) {
	config := DefaultConfig()
	if err := WithReadTimeout(-time.Second)(&config); err != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseParity(t *testing.T) {
	tests := []struct {
		input   string
		want    Parity
		wantErr bool
	}{
		{"N", ParityNone, false},
		{"E", ParityEven, false},
		{"O", ParityOdd, false},
		{"M", ParityMark, false},
		{"S", ParitySpace, false},
		{"n", ParityNone, true},
		{"X", ParityNone, true},
		{"", ParityNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseParity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseParity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidParity {
				t.Errorf("ParseParity(%q) error = %v, want ErrInvalidParity", tt.input, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseParity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStopBits(t *testing.T) {
	tests := []struct {
		input   string
		want    StopBits
		wantErr bool
	}{
		{"1", StopBits1, false},
		{"1.5", StopBits1Half, false},
		{"2", StopBits2, false},
		{"3", StopBits1, true},
		{"0", StopBits1, true},
		{"", StopBits1, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStopBits(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStopBits(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidStopBits {
				t.Errorf("ParseStopBits(%q) error = %v, want ErrInvalidStopBits", tt.input, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStopBits(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParityRoundTrip(t *testing.T) {
	for _, letter := range SupportedParities() {
		p, err := ParseParity(letter)
		if err != nil {
			t.Fatalf("ParseParity(%q) failed: %v", letter, err)
		}
		if p.String() != letter {
			t.Errorf("Parity %q round trip = %q", letter, p.String())
		}
	}
}

func TestStopBitsRoundTrip(t *testing.T) {
	for _, text := range SupportedStopBits() {
		s, err := ParseStopBits(text)
		if err != nil {
			t.Fatalf("ParseStopBits(%q) failed: %v", text, err)
		}
		if s.String() != text {
			t.Errorf("StopBits %q round trip = %q", text, s.String())
		}
	}
}
