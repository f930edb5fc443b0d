// Package hexcodec converts between raw byte sequences and the
// human-readable hex-pair form used on the console. Decoding is tolerant
// of arbitrary separators: everything that is not a hex digit is ignored.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// ErrOddDigits is returned when the input contains an odd number of hex
// digits after separators are stripped.
var ErrOddDigits = errors.New("odd number of hex digits")

var nonHexDigits = regexp.MustCompile(`[^0-9a-fA-F]`)

// Decode strips every non-hex-digit character from s and converts the
// remaining digits to bytes, two digits per byte. An empty residue
// decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	digits := nonHexDigits.ReplaceAllString(s, "")
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits in %q", ErrOddDigits, len(digits), s)
	}

	out, err := hex.DecodeString(digits)
	if err != nil {
		// Unreachable: the residue contains only hex digits of even length
		return nil, err
	}
	return out, nil
}

// Encode renders each byte as a two-digit uppercase hex pair, joined
// with single spaces. An empty sequence encodes to an empty string.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return fmt.Sprintf("% X", b)
}
