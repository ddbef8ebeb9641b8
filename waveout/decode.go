package waveout

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// sample is decoded PCM in the engine's output format: interleaved signed
// 16-bit little-endian stereo at outputRate.
type sample struct {
	data []byte
}

// decodeFile decodes path into the output format. Supported formats: wav and
// mp3, by file extension.
func decodeFile(path string) (*sample, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return decodeWav(path)
	case ".mp3":
		return decodeMP3(path)
	default:
		return nil, fmt.Errorf("decode %s: unsupported media format", path)
	}
}

func decodeWav(path string) (*sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return nil, fmt.Errorf("decode %s: missing format chunk", path)
	}

	frames := scaleTo16(buf.Data, buf.SourceBitDepth, buf.Format.NumChannels)
	return &sample{
		data: toOutput(frames, buf.Format.SampleRate, buf.Format.NumChannels),
	}, nil
}

func decodeMP3(path string) (*sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// go-mp3 always yields 16-bit little-endian stereo at the stream rate.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	frames := make([]int16, len(raw)/2)
	for i := range frames {
		frames[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return &sample{
		data: toOutput(frames, dec.SampleRate(), 2),
	}, nil
}

// scaleTo16 converts source samples at their native bit depth to signed
// 16-bit. 8-bit wav data is unsigned by convention.
func scaleTo16(data []int, bitDepth, channels int) []int16 {
	out := make([]int16, len(data))
	for i, v := range data {
		switch bitDepth {
		case 8:
			out[i] = int16((v - 128) << 8)
		case 16:
			out[i] = int16(v)
		case 24:
			out[i] = int16(v >> 8)
		case 32:
			out[i] = int16(v >> 16)
		default:
			out[i] = int16(v)
		}
	}
	return out
}

// toOutput converts interleaved frames at srcRate/srcChannels to the
// engine's output format. Resampling is nearest-neighbor; event sounds are
// short enough that fidelity does not warrant a filter bank.
func toOutput(frames []int16, srcRate, srcChannels int) []byte {
	if srcRate <= 0 || srcChannels <= 0 {
		return nil
	}
	srcFrames := len(frames) / srcChannels
	outFrames := srcFrames
	if srcRate != outputRate {
		outFrames = srcFrames * outputRate / srcRate
	}

	out := make([]byte, outFrames*outputChannels*2)
	for i := 0; i < outFrames; i++ {
		src := i
		if srcRate != outputRate {
			src = i * srcRate / outputRate
		}
		left := frames[src*srcChannels]
		right := left
		if srcChannels >= 2 {
			right = frames[src*srcChannels+1]
		}
		binary.LittleEndian.PutUint16(out[i*4:], uint16(left))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(right))
	}
	return out
}
