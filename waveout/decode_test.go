package waveout

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GNOME/gsound"
)

func TestDecodeFile_UnsupportedFormat(t *testing.T) {
	_, err := decodeFile("/tmp/sound.flac")
	require.ErrorContains(t, err, "unsupported media format")
}

func TestDecodeWav_NativeFormatPassesThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "native.wav")
	writeWav(t, path, outputRate, outputChannels, 128)

	s, err := decodeFile(path)
	require.NoError(t, err)
	// 128 stereo frames at 4 bytes per frame.
	assert.Len(t, s.data, 128*4)
}

func TestDecodeWav_MonoIsSpreadToStereo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono.wav")
	writeWav(t, path, outputRate, 1, 64)

	s, err := decodeFile(path)
	require.NoError(t, err)
	require.Len(t, s.data, 64*4)

	// Each frame carries the mono sample on both channels.
	for i := 0; i < 64; i++ {
		left := binary.LittleEndian.Uint16(s.data[i*4:])
		right := binary.LittleEndian.Uint16(s.data[i*4+2:])
		assert.Equal(t, left, right, "frame %d", i)
	}
}

func TestDecodeWav_Resamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "half.wav")
	writeWav(t, path, outputRate/2, 1, 100)

	s, err := decodeFile(path)
	require.NoError(t, err)
	// Half the source rate doubles the frame count.
	assert.Len(t, s.data, 200*4)
}

func TestDecodeWav_MissingFile(t *testing.T) {
	_, err := decodeFile("/no/such/dir/sound.wav")
	require.Error(t, err)
	assert.Equal(t, gsound.CodeNotFound, decodeCode(err))
}

func TestScaleTo16(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		in       []int
		want     []int16
	}{
		{name: "8-bit unsigned", bitDepth: 8, in: []int{128, 255, 0}, want: []int16{0, 32512, -32768}},
		{name: "16-bit", bitDepth: 16, in: []int{-32768, 0, 32767}, want: []int16{-32768, 0, 32767}},
		{name: "24-bit", bitDepth: 24, in: []int{1 << 22}, want: []int16{1 << 14}},
		{name: "32-bit", bitDepth: 32, in: []int{1 << 30}, want: []int16{1 << 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scaleTo16(tt.in, tt.bitDepth, 1))
		})
	}
}
