package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox_DerivedValues(t *testing.T) {
	box := NewBoundingBox(10, 20, 110, 70)
	require.NotNil(t, box)

	assert.Equal(t, 100.0, box.Width)
	assert.Equal(t, 50.0, box.Height)
	assert.Equal(t, 60.0, box.CenterX)
	assert.Equal(t, 45.0, box.CenterY)
	assert.Equal(t, 5000.0, box.Area)
}

func TestNewBoundingBox_InvertedCorners(t *testing.T) {
	box := NewBoundingBox(110, 70, 10, 20)

	assert.Equal(t, 10.0, box.X1)
	assert.Equal(t, 20.0, box.Y1)
	assert.Equal(t, 110.0, box.X2)
	assert.Equal(t, 70.0, box.Y2)
	assert.Equal(t, 100.0, box.Width)
	assert.Equal(t, 50.0, box.Height)
}

func TestNewBoundingBox_ZeroSize(t *testing.T) {
	box := NewBoundingBox(5, 5, 5, 5)

	assert.Equal(t, 0.0, box.Width)
	assert.Equal(t, 0.0, box.Height)
	assert.Equal(t, 0.0, box.Area)
	assert.Equal(t, 5.0, box.CenterX)
}

func TestFragment_HasCoordinates(t *testing.T) {
	withBox := Fragment{Text: "positioned", Box: NewBoundingBox(0, 0, 10, 10)}
	withoutBox := Fragment{Text: "floating"}

	assert.True(t, withBox.HasCoordinates())
	assert.False(t, withoutBox.HasCoordinates())
}
