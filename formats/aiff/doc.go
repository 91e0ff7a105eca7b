// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes stereo 16-bit PCM AIFF files.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. It is
// the alternate container for HRTF sets distributed as .aif/.aiff; the
// samples are the same signed 16-bit values a WAV set would carry, the
// container merely stores them big-endian.
//
// # Usage
//
//	f, _ := os.Open("elev0/H0e000a.aiff")
//	pcm, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pcm.Frames())
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not an AIFF file
//   - ErrOnlyPCM16bitSupported: bit depth other than 16
//   - ErrUnsupportedAiffLayout: missing format or unreadable sound data
//   - audio.ErrNotStereo: channel count other than two
package aiff
