// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"fmt"
	"strconv"
)

// LiteralStyle selects how sample values are written.
type LiteralStyle string

const (
	// LiteralHex writes 0xa, -0x5, 0x0.
	LiteralHex LiteralStyle = "hex"
	// LiteralDec writes 10, -5, 0.
	LiteralDec LiteralStyle = "dec"
)

func ParseLiteralStyle(s string) (LiteralStyle, error) {
	switch st := LiteralStyle(s); st {
	case LiteralHex, LiteralDec:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLiteralStyle, s)
	}
}

// FormatSample renders v as a C integer literal. Negative hex values carry
// the sign in front of the prefix so -32768 becomes -0x8000, which a C
// compiler reads as unary minus applied to 0x8000.
func FormatSample(v int16, style LiteralStyle) string {
	if style == LiteralDec {
		return strconv.FormatInt(int64(v), 10)
	}

	if v < 0 {
		return "-0x" + strconv.FormatInt(-int64(v), 16)
	}
	return "0x" + strconv.FormatInt(int64(v), 16)
}

// ParseSample reads back a literal produced by FormatSample.
func ParseSample(s string) (int16, error) {
	n, err := strconv.ParseInt(s, 0, 16)
	if err != nil {
		return 0, err
	}

	return int16(n), nil
}
