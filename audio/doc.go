// SPDX-License-Identifier: EPL-2.0

// Package audio holds the types shared by the format decoders.
//
// # Stereo16
//
// Every decoder returns a fully decoded *Stereo16:
//
//	type Stereo16 struct {
//	    SampleRate int
//	    Left       []int16
//	    Right      []int16
//	}
//
// Left and Right always have the same length, Frames(). SplitStereo builds
// one from the interleaved int samples of a go-audio IntBuffer.
//
// # Format Registry
//
// Decoders are registered by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("aiff", aiff.Decoder{})
//
//	dec, ok := reg.Lookup("elev0/H0e000a.wav")
//	if ok {
//	    pcm, err := dec.Decode(file)
//	}
//
// Keys are case-insensitive. The registry is safe for concurrent use.
//
// # Errors
//
//   - ErrNotStereo: the stream does not have exactly two channels
//   - ErrIncompleteFrame: the sample data ends in the middle of a frame
package audio
