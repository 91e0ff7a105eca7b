// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteStereoWAV16 writes an interleaved stereo 16-bit PCM WAV at sampleRate.
// left and right must hold the same number of samples.
func WriteStereoWAV16(w io.Writer, sampleRate int, left, right []int16) error {
	if len(left) != len(right) {
		return ErrChannelLengthMismatch
	}

	numChannels := uint16(2)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(left) * int(blockAlign))
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(left) == 0 {
		return nil
	}

	// Write in chunks of frames, 4 bytes per frame
	const chunkFrames = 4096
	buf := make([]byte, min(len(left), chunkFrames)*4)

	for i := 0; i < len(left); i += chunkFrames {
		end := min(i+chunkFrames, len(left))
		buf = buf[:(end-i)*4]

		for j := i; j < end; j++ {
			off := (j - i) * 4
			binary.LittleEndian.PutUint16(buf[off:off+2], uint16(left[j]))
			binary.LittleEndian.PutUint16(buf[off+2:off+4], uint16(right[j]))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
