package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate_QuarterTurnIsCounterClockwise(t *testing.T) {
	h := openImage(t, patternImage(100, 100), PNG)

	h.Rotate(90, nil)
	require.NoError(t, h.Err())
	assertDims(t, h, 100, 100)

	// The top-right quadrant moves to the top-left.
	c, err := h.ColorAt(25, 25)
	require.NoError(t, err)
	assert.Equal(t, "#00FF00", c.Hex)

	c, err = h.ColorAt(75, 75)
	require.NoError(t, err)
	assert.Equal(t, "#0000FF", c.Hex)
}

func TestRotate_SwapsDimensions(t *testing.T) {
	h := openImage(t, solidImage(200, 100, red), PNG)
	h.Rotate(90, nil)
	require.NoError(t, h.Err())
	assertDims(t, h, 100, 200)
}

func TestRotate_GrowsAndFillsCorners(t *testing.T) {
	h := openImage(t, solidImage(100, 100, red), PNG)

	h.Rotate(45, color.NRGBA{0, 0, 255, 255})
	require.NoError(t, h.Err())

	w, ht, err := h.Dimensions()
	require.NoError(t, err)
	assert.Greater(t, w, 100)
	assert.Greater(t, ht, 100)

	corner, err := h.ColorAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "#0000FF", corner.Hex)

	centre, err := h.ColorAt(w/2, ht/2)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", centre.Hex)
}

func TestRotate_DefaultBackgroundIsBlack(t *testing.T) {
	h := openImage(t, solidImage(60, 60, white), PNG)
	h.Rotate(30, nil)
	require.NoError(t, h.Err())

	corner, err := h.ColorAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "#000000", corner.Hex)
	assert.Equal(t, uint8(255), corner.RGBA.A)
}
