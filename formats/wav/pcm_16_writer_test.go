package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteStereoWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	left := []int16{0, 100, -100}
	right := []int16{200, -200, 0}
	buf := new(bytes.Buffer)

	if err := WriteStereoWAV16(buf, 44100, left, right); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(left)*4 {
		t.Fatalf("WAV file size = %d, want %d", len(data), 44+len(left)*4)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWriteStereoWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteStereoWAV16(buf, 8000, nil, nil); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v, want nil", err)
	}

	// Should still create valid WAV header
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteStereoWAV16_LengthMismatch(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	err := WriteStereoWAV16(buf, 8000, []int16{1, 2}, []int16{1})

	if !errors.Is(err, ErrChannelLengthMismatch) {
		t.Errorf("WriteStereoWAV16() error = %v, want ErrChannelLengthMismatch", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteStereoWAV16() wrote %d bytes on error, want 0", buf.Len())
	}
}

func TestWriteStereoWAV16_Header(t *testing.T) {
	t.Parallel()

	left := []int16{1, 2, 3, 4}
	right := []int16{5, 6, 7, 8}
	buf := new(bytes.Buffer)

	if err := WriteStereoWAV16(buf, 44100, left, right); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v", err)
	}

	data := buf.Bytes()

	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + 16},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 44100 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 16},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestWriteStereoWAV16_Interleaving(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteStereoWAV16(buf, 8000, []int16{10, -5}, []int16{20, 7}); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v", err)
	}

	payload := buf.Bytes()[44:]
	want := []int16{10, 20, -5, 7}

	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(payload[i*2 : i*2+2]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestWriteStereoWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	// Spans several write chunks
	n := 10000
	left := make([]int16, n)
	right := make([]int16, n)
	for i := range n {
		left[i] = int16(i)
		right[i] = int16(-i)
	}

	buf := new(bytes.Buffer)
	if err := WriteStereoWAV16(buf, 48000, left, right); err != nil {
		t.Fatalf("WriteStereoWAV16() error = %v", err)
	}

	pcm, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if pcm.Frames() != n {
		t.Fatalf("Frames() = %d, want %d", pcm.Frames(), n)
	}
	if pcm.Left[n-1] != int16(n-1) || pcm.Right[n-1] != int16(-(n-1)) {
		t.Errorf("last frame = (%d, %d), want (%d, %d)", pcm.Left[n-1], pcm.Right[n-1], n-1, -(n - 1))
	}
}

func BenchmarkWriteStereoWAV16(b *testing.B) {
	left := make([]int16, 512)
	right := make([]int16, 512)
	buf := new(bytes.Buffer)

	for b.Loop() {
		buf.Reset()
		_ = WriteStereoWAV16(buf, 44100, left, right)
	}
}
