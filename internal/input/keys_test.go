package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey("W")
	require.NoError(t, err)
	assert.Equal(t, KeyW, k)

	k, err = ParseKey(" LeftShift ")
	require.NoError(t, err)
	assert.Equal(t, KeyLeftShift, k)

	_, err = ParseKey("hyper")
	assert.ErrorContains(t, err, `unknown key "hyper"`)
}

func TestParseMouseButton(t *testing.T) {
	b, err := ParseMouseButton("middle")
	require.NoError(t, err)
	assert.Equal(t, MouseMiddle, b)

	_, err = ParseMouseButton("fourth")
	assert.Error(t, err)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "w", KeyW.String())
	assert.Equal(t, "leftshift", KeyLeftShift.String())
	assert.Equal(t, "key(999)", Key(999).String())
	assert.Equal(t, "left", MouseLeft.String())
}

func TestKeyNamesRoundTrip(t *testing.T) {
	names := KeyNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		k, err := ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
}

func TestKeysAxis(t *testing.T) {
	s := NewKeys(KeyW, KeyD)
	assert.True(t, s.Pressed(KeyW))
	assert.False(t, s.Pressed(KeyS))
	assert.Equal(t, float32(1), s.Axis(KeyW, KeyS))
	assert.Equal(t, float32(-1), s.Axis(KeyA, KeyD))

	both := NewKeys(KeyW, KeyS)
	assert.Equal(t, float32(0), both.Axis(KeyW, KeyS))

	var none Keys
	assert.False(t, none.Pressed(KeyW))
}

func TestPoll(t *testing.T) {
	down := map[Key]bool{KeyE: true, KeyQ: false}
	s := Poll(func(k Key) bool { return down[k] }, KeyE, KeyQ, KeyW)
	assert.Len(t, s, 1)
	assert.True(t, s.Pressed(KeyE))
}
