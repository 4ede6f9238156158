package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampFrameTime(t *testing.T) {
	assert.Equal(t, float32(1.0/60), clampFrameTime(1.0/60))
	assert.Equal(t, float32(maxFrameTime), clampFrameTime(3))
	assert.Zero(t, clampFrameTime(-0.5))
}
