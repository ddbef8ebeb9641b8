package gsound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProplist_PreservesOrder(t *testing.T) {
	pl, err := NewProplist(
		AttrMediaFilename, "/tmp/bell.wav",
		AttrEventID, "bell",
		AttrEventDescription, "Bell rung",
	)
	require.NoError(t, err)

	props := pl.Props()
	require.Len(t, props, 3)
	assert.Equal(t, AttrMediaFilename, props[0].Key)
	assert.Equal(t, AttrEventID, props[1].Key)
	assert.Equal(t, AttrEventDescription, props[2].Key)
}

func TestNewProplist_MissingValue(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
	}{
		{name: "single key", pairs: []string{AttrEventID}},
		{name: "trailing key", pairs: []string{AttrEventID, "bell", AttrMediaFilename}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, err := NewProplist(tt.pairs...)
			require.ErrorIs(t, err, ErrMissingValue)
			assert.Nil(t, pl)
		})
	}
}

func TestNewProplist_Empty(t *testing.T) {
	pl, err := NewProplist()
	require.NoError(t, err)
	assert.Equal(t, 0, pl.Len())
}

func TestProplistFromMap_SortedKeys(t *testing.T) {
	pl := ProplistFromMap(map[string]string{
		"media.role":     "event",
		"event.id":       "bell",
		"media.filename": "/tmp/bell.wav",
	})

	props := pl.Props()
	require.Len(t, props, 3)
	assert.Equal(t, "event.id", props[0].Key)
	assert.Equal(t, "media.filename", props[1].Key)
	assert.Equal(t, "media.role", props[2].Key)
}

func TestProplist_SetReplacesInPlace(t *testing.T) {
	pl, err := NewProplist("a", "1", "b", "2")
	require.NoError(t, err)

	pl.Set("a", "3")

	props := pl.Props()
	require.Len(t, props, 2)
	assert.Equal(t, Prop{Key: "a", Value: "3"}, props[0])
	assert.Equal(t, Prop{Key: "b", Value: "2"}, props[1])
}

func TestProplist_Get(t *testing.T) {
	pl, err := NewProplist(AttrEventID, "bell")
	require.NoError(t, err)

	v, ok := pl.Get(AttrEventID)
	require.True(t, ok)
	assert.Equal(t, "bell", v)

	_, ok = pl.Get(AttrMediaFilename)
	assert.False(t, ok)
}

func TestProplist_MergedOverrides(t *testing.T) {
	defaults, err := NewProplist(
		AttrApplicationName, "app",
		AttrMediaRole, "event",
	)
	require.NoError(t, err)
	perCall, err := NewProplist(
		AttrMediaRole, "music",
		AttrEventID, "bell",
	)
	require.NoError(t, err)

	merged := defaults.Merged(perCall)

	// Per-call value wins on collision, keys unique to either side survive.
	role, _ := merged.Get(AttrMediaRole)
	assert.Equal(t, "music", role)
	name, _ := merged.Get(AttrApplicationName)
	assert.Equal(t, "app", name)
	id, _ := merged.Get(AttrEventID)
	assert.Equal(t, "bell", id)
	assert.Equal(t, 3, merged.Len())

	// Inputs are untouched.
	role, _ = defaults.Get(AttrMediaRole)
	assert.Equal(t, "event", role)
}

func TestProplist_MergedNil(t *testing.T) {
	defaults, err := NewProplist(AttrEventID, "bell")
	require.NoError(t, err)

	merged := defaults.Merged(nil)
	assert.Equal(t, defaults.Props(), merged.Props())
}
