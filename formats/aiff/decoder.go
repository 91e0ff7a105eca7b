package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/hrtfgen/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode reads a complete AIFF stream holding stereo 16-bit PCM.
func (Decoder) Decode(r io.Reader) (*audio.Stereo16, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return decodePCM(dec)
}

func decodePCM(dec aiffReader) (*audio.Stereo16, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	if format.NumChannels != 2 {
		return nil, fmt.Errorf("%w: got %d", audio.ErrNotStereo, format.NumChannels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return audio.SplitStereo(buf.Data, format.SampleRate)
}
