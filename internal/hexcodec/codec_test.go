package hexcodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"plain pairs", "414243", []byte{0x41, 0x42, 0x43}, false},
		{"space separated", "41 42 43", []byte{0x41, 0x42, 0x43}, false},
		{"mixed case", "dEaDbEeF", []byte{0xDE, 0xAD, 0xBE, 0xEF}, false},
		{"arbitrary separators", "0xDE:AD-be.ef", []byte{0xDE, 0xAD, 0xBE, 0xEF}, false},
		{"empty input", "", nil, false},
		{"separators only", " -:,. ", nil, false},
		{"odd digits", "abc", nil, true},
		{"odd digits with separators", "ab c", nil, true},
		{"single digit", "4", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrOddDigits) {
					t.Errorf("Decode(%q) error = %v, want ErrOddDigits", tt.input, err)
				}
				return
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", nil, ""},
		{"single byte", []byte{0x00}, "00"},
		{"high byte", []byte{0xFF}, "FF"},
		{"multiple bytes", []byte{0x41, 0x42, 0x43}, "41 42 43"},
		{"leading zeros", []byte{0x01, 0x02}, "01 02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.input); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every byte value must survive Encode then Decode
	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}

	decoded, err := Decode(Encode(seq))
	if err != nil {
		t.Fatalf("Decode(Encode(seq)) failed: %v", err)
	}
	if !bytes.Equal(decoded, seq) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, seq)
	}
}
