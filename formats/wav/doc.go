// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes stereo 16-bit PCM WAV files.
//
// Decoding is delegated to github.com/go-audio/wav. Only the canonical
// uncompressed layout is accepted: format tag 1 (PCM), 16 bits per sample
// and exactly two channels. The sample rate is reported but never used.
//
// # Decoding
//
//	f, _ := os.Open("elev0/H0e000a.wav")
//	pcm, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile), wav.ErrOnlyPCM16bitSupported
//	    // or audio.ErrNotStereo
//	}
//	fmt.Println(pcm.Frames(), pcm.Left[0], pcm.Right[0])
//
// # Writing
//
// WriteStereoWAV16 produces the same layout, mostly for building fixtures:
//
//	wav.WriteStereoWAV16(w, 44100, left, right)
package wav
