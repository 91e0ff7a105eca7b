// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/hrtfgen/hrtf"
)

// SampleLengthPolicy decides the inner dimension of the sample table.
type SampleLengthPolicy string

const (
	// SampleLengthStrict requires every orientation to have the same length.
	SampleLengthStrict SampleLengthPolicy = "strict"
	// SampleLengthMax uses the longest orientation.
	SampleLengthMax SampleLengthPolicy = "max"
	// SampleLengthLast uses the length of the last orientation.
	SampleLengthLast SampleLengthPolicy = "last"
)

// ParseSampleLengthPolicy maps a policy name to its SampleLengthPolicy.
func ParseSampleLengthPolicy(s string) (SampleLengthPolicy, error) {
	switch p := SampleLengthPolicy(s); p {
	case SampleLengthStrict, SampleLengthMax, SampleLengthLast:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSampleLengthPolicy, s)
	}
}

const (
	DefaultOrientationName = "kHRTFOrientation"
	DefaultDataName        = "kHRTF"
	DefaultElementType     = "int"
)

// Emitter renders a sorted catalog as C array declarations. Zero fields
// fall back to the defaults.
type Emitter struct {
	OrientationName string
	DataName        string
	ElementType     string
	Literal         LiteralStyle
	SampleLength    SampleLengthPolicy

	// Constants prepends kHRTFNum, kHRTFFilterLen and kHRTFSampleRate.
	Constants bool
}

func (e Emitter) withDefaults() Emitter {
	if e.OrientationName == "" {
		e.OrientationName = DefaultOrientationName
	}
	if e.DataName == "" {
		e.DataName = DefaultDataName
	}
	if e.ElementType == "" {
		e.ElementType = DefaultElementType
	}
	if e.Literal == "" {
		e.Literal = LiteralHex
	}
	if e.SampleLength == "" {
		e.SampleLength = SampleLengthStrict
	}

	return e
}

// InnerLength returns the inner dimension of the sample table for c.
func (e Emitter) InnerLength(c hrtf.Catalog) (int, error) {
	e = e.withDefaults()

	if len(c) == 0 {
		return 0, nil
	}

	switch e.SampleLength {
	case SampleLengthLast:
		return c[len(c)-1].SampleCount, nil
	case SampleLengthMax:
		n := 0
		for _, entry := range c {
			n = max(n, entry.SampleCount)
		}
		return n, nil
	case SampleLengthStrict:
		first := c[0]
		for _, entry := range c[1:] {
			if entry.SampleCount != first.SampleCount {
				return 0, fmt.Errorf("%w: %s has %d samples, %s has %d",
					ErrSampleLengthMismatch, first.Path, first.SampleCount, entry.Path, entry.SampleCount)
			}
		}
		return first.SampleCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSampleLengthPolicy, e.SampleLength)
	}
}

func sampleRate(c hrtf.Catalog) (int, error) {
	if len(c) == 0 {
		return 0, nil
	}

	rate := c[0].SampleRate
	for _, entry := range c[1:] {
		if entry.SampleRate != rate {
			return 0, fmt.Errorf("%w: %s at %d Hz, %s at %d Hz",
				ErrSampleRateMismatch, c[0].Path, rate, entry.Path, entry.SampleRate)
		}
	}

	return rate, nil
}

// Emit renders c in its given order:
//
//	const int kHRTFOrientation[N][2] = { {e, a}, ... };
//	const int kHRTF[N][2][L] = {
//	{ { left... },
//	  { right... } }
//	, ...
//	};
func (e Emitter) Emit(c hrtf.Catalog) (string, error) {
	e = e.withDefaults()

	if _, err := ParseLiteralStyle(string(e.Literal)); err != nil {
		return "", err
	}

	length, err := e.InnerLength(c)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	if e.Constants {
		rate, err := sampleRate(c)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "const int kHRTFNum = %d;\n", len(c))
		fmt.Fprintf(&b, "const int kHRTFFilterLen = %d;\n", length)
		fmt.Fprintf(&b, "const int kHRTFSampleRate = %d;\n", rate)
	}

	fmt.Fprintf(&b, "const int %s[%d][2] = { ", e.OrientationName, len(c))
	for i, entry := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{%d, %d}", entry.Elevation, entry.Azimuth)
	}
	b.WriteString(" };\n")

	fmt.Fprintf(&b, "const %s %s[%d][2][%d] = {\n", e.ElementType, e.DataName, len(c), length)
	for i, entry := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("{ ")
		e.writeSamples(&b, entry.Left)
		b.WriteString(",\n  ")
		e.writeSamples(&b, entry.Right)
		b.WriteString(" }\n")
	}
	b.WriteString("};\n")

	return b.String(), nil
}

func (e Emitter) writeSamples(b *strings.Builder, samples []int16) {
	b.WriteString("{ ")
	for i, v := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatSample(v, e.Literal))
	}
	b.WriteString(" }")
}

// Fprint renders c and writes it to w. Nothing is written on error.
func (e Emitter) Fprint(w io.Writer, c hrtf.Catalog) error {
	text, err := e.Emit(c)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

// Dimensions reports the declared sizes of both tables for c.
func (e Emitter) Dimensions(c hrtf.Catalog) (rows, length int, err error) {
	length, err = e.InnerLength(c)
	return len(c), length, err
}
