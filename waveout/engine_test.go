package waveout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GNOME/gsound"
)

// writeWav writes a 16-bit PCM wav fixture with a simple ramp waveform.
func writeWav(t *testing.T, path string, rate, channels, frames int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	data := make([]int, frames*channels)
	for i := range data {
		data[i] = (i % 200) * 100
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func newCreatedEngine(t *testing.T, dirs []string) *Engine {
	t.Helper()
	e := NewWithDirs(dirs)
	require.Equal(t, gsound.CodeSuccess, e.Create())
	t.Cleanup(func() { e.Destroy() })
	return e
}

func TestEngine_ImplementsInterface(t *testing.T) {
	var _ gsound.Engine = New()
}

func TestEngine_CreateDestroyStates(t *testing.T) {
	e := NewWithDirs(nil)

	assert.Equal(t, gsound.CodeState, e.ChangeProps(&gsound.Proplist{}))
	assert.Equal(t, gsound.CodeState, e.Cancel(1))
	assert.Equal(t, gsound.CodeState, e.Destroy())

	require.Equal(t, gsound.CodeSuccess, e.Create())
	assert.Equal(t, gsound.CodeState, e.Create(), "double create must fail")

	require.Equal(t, gsound.CodeSuccess, e.Destroy())
	assert.Equal(t, gsound.CodeState, e.Destroy())
}

func TestEngine_SetDriver(t *testing.T) {
	e := newCreatedEngine(t, nil)

	assert.Equal(t, gsound.CodeSuccess, e.SetDriver(""))
	assert.Equal(t, gsound.CodeSuccess, e.SetDriver("waveout"))
	assert.Equal(t, gsound.CodeNotAvailable, e.SetDriver("pulse"))
}

func TestEngine_ResolveMedia(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "bell.wav"), outputRate, 2, 64)
	e := newCreatedEngine(t, []string{dir})

	tests := []struct {
		name     string
		pairs    []string
		wantPath string
		wantCode gsound.Code
	}{
		{
			name:     "filename wins over event id",
			pairs:    []string{gsound.AttrMediaFilename, "/tmp/x.wav", gsound.AttrEventID, "bell"},
			wantPath: "/tmp/x.wav",
			wantCode: gsound.CodeSuccess,
		},
		{
			name:     "event id resolved in sound dirs",
			pairs:    []string{gsound.AttrEventID, "bell"},
			wantPath: filepath.Join(dir, "bell.wav"),
			wantCode: gsound.CodeSuccess,
		},
		{
			name:     "unknown event id",
			pairs:    []string{gsound.AttrEventID, "no-such-event"},
			wantCode: gsound.CodeNotFound,
		},
		{
			name:     "no media attributes",
			pairs:    nil,
			wantCode: gsound.CodeInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, err := gsound.NewProplist(tt.pairs...)
			require.NoError(t, err)
			path, code := e.resolveMedia(pl)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestEngine_CachePrimesSamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ding.wav")
	writeWav(t, path, outputRate, 2, 64)
	e := newCreatedEngine(t, nil)

	pl, err := gsound.NewProplist(gsound.AttrMediaFilename, path)
	require.NoError(t, err)

	require.Equal(t, gsound.CodeSuccess, e.Cache(pl))
	assert.True(t, e.cache.contains(path))
}

func TestEngine_CacheMissingFile(t *testing.T) {
	e := newCreatedEngine(t, nil)

	pl, err := gsound.NewProplist(gsound.AttrMediaFilename, "/no/such/file.wav")
	require.NoError(t, err)
	assert.Equal(t, gsound.CodeNotFound, e.Cache(pl))
}

func TestEngine_DefaultsMergeIntoRequests(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ding.wav")
	writeWav(t, path, outputRate, 2, 64)
	e := newCreatedEngine(t, nil)

	defaults, err := gsound.NewProplist(gsound.AttrMediaFilename, path)
	require.NoError(t, err)
	require.Equal(t, gsound.CodeSuccess, e.ChangeProps(defaults))

	// The default filename applies when the request has none.
	empty, err := gsound.NewProplist()
	require.NoError(t, err)
	assert.Equal(t, gsound.CodeSuccess, e.Cache(empty))

	// A per-call filename overrides the default.
	override, err := gsound.NewProplist(gsound.AttrMediaFilename, "/no/such/file.wav")
	require.NoError(t, err)
	assert.Equal(t, gsound.CodeNotFound, e.Cache(override))
}

func TestEngine_CancelUnknownTokenIsNoop(t *testing.T) {
	e := newCreatedEngine(t, nil)
	assert.Equal(t, gsound.CodeSuccess, e.Cancel(42))
}

func TestSampleCache_ReturnsSameSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ding.wav")
	writeWav(t, path, outputRate, 2, 64)

	c := newSampleCache()
	s1, err := c.get(path)
	require.NoError(t, err)
	s2, err := c.get(path)
	require.NoError(t, err)
	assert.Same(t, s1, s2)
}
