// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/hrtfgen/formats/wav"
)

// DefaultSampleRate is the rate of the MIT KEMAR set.
const DefaultSampleRate = 44100

// File describes one stereo WAV file inside a fixture tree.
type File struct {
	// Rel is the slash separated path relative to the tree root,
	// e.g. "elev0/H0e000a.wav".
	Rel        string
	SampleRate int
	Left       []int16
	Right      []int16
}

// NewFile creates a fixture file with an n frame ramp whose values are
// derived from seed so every file in a tree has distinct samples.
func NewFile(rel string, n int, seed int) File {
	left := make([]int16, n)
	right := make([]int16, n)
	for i := range n {
		left[i] = int16(seed*31 + i)
		right[i] = int16(-(seed*17 + i))
	}

	return File{Rel: rel, SampleRate: DefaultSampleRate, Left: left, Right: right}
}

// WAVBytes encodes left and right as a stereo 16-bit WAV.
func WAVBytes(t testing.TB, sampleRate int, left, right []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := wav.WriteStereoWAV16(buf, sampleRate, left, right); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v", err)
	}

	return buf.Bytes()
}

// WriteTree writes files below root, creating directories as needed.
func WriteTree(t testing.TB, root string, files ...File) {
	t.Helper()

	for _, f := range files {
		rate := f.SampleRate
		if rate == 0 {
			rate = DefaultSampleRate
		}

		WriteRaw(t, root, f.Rel, WAVBytes(t, rate, f.Left, f.Right))
	}
}

// WriteRaw writes arbitrary bytes to rel below root.
func WriteRaw(t testing.TB, root, rel string, data []byte) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}
