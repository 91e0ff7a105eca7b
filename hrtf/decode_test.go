package hrtf

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/ik5/hrtfgen/audio"
	"github.com/ik5/hrtfgen/formats/wav"
	"github.com/ik5/hrtfgen/internal/audiotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFile_RoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	audiotest.WriteTree(t, root, audiotest.File{
		Rel:   "H0e000.wav",
		Left:  []int16{1, -1, 32767, -32768},
		Right: []int16{0, 2, -2, 100},
	})

	pcm, err := DecodeFile(wavRegistry(), filepath.Join(root, "H0e000.wav"))
	require.NoError(t, err)

	assert.Equal(t, 4, pcm.Frames())
	assert.Equal(t, []int16{1, -1, 32767, -32768}, pcm.Left)
	assert.Equal(t, []int16{0, 2, -2, 100}, pcm.Right)
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	audiotest.WriteRaw(t, root, "mono.wav",
		monoWAV(t))
	audiotest.WriteRaw(t, root, "short.wav",
		truncatedWAV(t))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(root, "missing.wav"), ErrIO},
		{"no decoder", filepath.Join(root, "H0e000.flac"), ErrDecode},
		{"not stereo", filepath.Join(root, "mono.wav"), audio.ErrNotStereo},
		{"truncated data", filepath.Join(root, "short.wav"), wav.ErrTruncatedData},
		{"truncated data kind", filepath.Join(root, "short.wav"), ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeFile(wavRegistry(), tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// monoWAV builds a one channel 16-bit WAV by patching the channel count of
// a stereo fixture.
func monoWAV(t *testing.T) []byte {
	t.Helper()

	data := audiotest.WAVBytes(t, 8000, []int16{1, 2}, []int16{3, 4})
	data[22] = 1 // channels
	data[32] = 2 // block align
	data[28], data[29], data[30], data[31] = 0x80, 0x3e, 0, 0 // byte rate 16000

	return data
}

// truncatedWAV declares four frames in its data chunk but carries two.
func truncatedWAV(t *testing.T) []byte {
	t.Helper()

	data := audiotest.WAVBytes(t, 8000, []int16{10, -5}, []int16{20, 7})
	binary.LittleEndian.PutUint32(data[40:44], 16)

	return data
}
