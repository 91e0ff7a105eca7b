// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/hrtfgen/audio"
)

const (
	formatPCM   = 1
	bitDepthPCM = 16
)

type Decoder struct{}

// Decode reads a complete RIFF/WAVE stream holding interleaved stereo
// 16-bit PCM and returns its channels.
func (Decoder) Decode(r io.Reader) (*audio.Stereo16, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM || dec.BitDepth != bitDepthPCM {
		return nil, ErrOnlyPCM16bitSupported
	}

	if dec.NumChans != 2 {
		return nil, fmt.Errorf("%w: got %d", audio.ErrNotStereo, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if got := len(buf.Data) * 2; got < dec.PCMSize {
		return nil, fmt.Errorf("%w: header declares %d bytes, read %d", ErrTruncatedData, dec.PCMSize, got)
	}

	return audio.SplitStereo(buf.Data, int(dec.SampleRate))
}
