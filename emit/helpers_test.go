package emit

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	orientationRe = regexp.MustCompile(`\{(-?\d+), (-?\d+)\}`)
	sampleRowRe   = regexp.MustCompile(`\{ \{ ([^}]*) \},\n  \{ ([^}]*) \} \}`)
)

type fataler interface {
	Fatalf(format string, args ...any)
}

// parseTables reads back the orientation pairs and left/right rows of a
// header rendered without constants.
func parseTables(t fataler, text string) (orientations [][2]int, samples [][2][]int16) {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok {
		t.Fatalf("header has no second line: %q", text)
	}

	for _, m := range orientationRe.FindAllStringSubmatch(first, -1) {
		e, _ := strconv.Atoi(m[1])
		a, _ := strconv.Atoi(m[2])
		orientations = append(orientations, [2]int{e, a})
	}

	for _, m := range sampleRowRe.FindAllStringSubmatch(rest, -1) {
		samples = append(samples, [2][]int16{parseRow(t, m[1]), parseRow(t, m[2])})
	}

	return orientations, samples
}

func parseRow(t fataler, row string) []int16 {
	if row == "" {
		return nil
	}

	fields := strings.Split(row, ", ")
	out := make([]int16, len(fields))
	for i, f := range fields {
		v, err := ParseSample(f)
		if err != nil {
			t.Fatalf("ParseSample(%q) error = %v", f, err)
		}
		out[i] = v
	}

	return out
}
