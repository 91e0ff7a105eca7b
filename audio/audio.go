// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Stereo16 holds a fully decoded two channel 16-bit PCM stream split into
// its left and right channels.
type Stereo16 struct {
	// SampleRate of the PCM stream in Hz. Informational only.
	SampleRate int
	// Left holds channel 0 in frame order.
	Left []int16
	// Right holds channel 1 in frame order.
	Right []int16
}

// Frames returns the number of stereo frames (samples per channel).
func (s *Stereo16) Frames() int { return len(s.Left) }

// Decoder constructs a Stereo16 from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Stereo16, error)
}

// SplitStereo de-interleaves 16-bit samples (as produced by go-audio
// IntBuffers) into left and right channels.
func SplitStereo(data []int, sampleRate int) (*Stereo16, error) {
	if len(data)%2 != 0 {
		return nil, ErrIncompleteFrame
	}

	frames := len(data) / 2
	out := &Stereo16{
		SampleRate: sampleRate,
		Left:       make([]int16, frames),
		Right:      make([]int16, frames),
	}

	for i := range frames {
		out.Left[i] = int16(data[2*i])
		out.Right[i] = int16(data[2*i+1])
	}

	return out, nil
}

// Registry for decoders by format key (e.g., "wav", "aiff").
// Keys are lower case file extensions without the leading dot.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Lookup returns the decoder registered for the extension of path.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	ext := filepath.Ext(path)
	if len(ext) < 2 {
		return nil, false
	}

	return r.Get(ext[1:])
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
