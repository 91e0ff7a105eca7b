// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/hrtfgen/audio"
)

var errNoDecoder = errors.New("no decoder registered for extension")

// DecodeFile decodes one stereo 16-bit PCM file into its left and right
// sample sequences. The decoder is chosen by the file extension. Open
// failures are reported as ErrIO, everything else as ErrDecode.
func DecodeFile(reg *audio.Registry, path string) (*audio.Stereo16, error) {
	dec, ok := reg.Lookup(path)
	if !ok {
		return nil, pathError(ErrDecode, path, errNoDecoder)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pathError(ErrIO, path, err)
	}
	defer f.Close()

	pcm, err := dec.Decode(f)
	if err != nil {
		return nil, pathError(ErrDecode, path, fmt.Errorf("decoding: %w", err))
	}

	return pcm, nil
}
