package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropOrigin(t *testing.T) {
	size := image.Pt(100, 80)

	tests := []struct {
		name string
		x, y Offset
		want image.Point
	}{
		{"center", Token("center"), Token("center"), image.Pt(25, 15)},
		{"left top", Token("left"), Token("top"), image.Pt(0, 0)},
		{"right bottom", Token("right"), Token("bottom"), image.Pt(50, 30)},
		{"pixels from origin", Pixels(10), Pixels(20), image.Pt(10, 20)},
		{"numeric strings", Token("7"), Token("12px"), image.Pt(7, 12)},
		{"unknown tokens are zero", Token("middle"), Token("abc"), image.Pt(0, 0)},
		{"tokens are case sensitive", Token("Right"), Token("BOTTOM"), image.Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cropOrigin(size, 50, 50, tt.x, tt.y)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCropOrigin_CenterOf100(t *testing.T) {
	got := cropOrigin(image.Pt(100, 100), 50, 50, Token("center"), Token("center"))
	assert.Equal(t, image.Pt(25, 25), got)
}

func TestCrop_Quadrants(t *testing.T) {
	tests := []struct {
		name    string
		x, y    Offset
		wantHex string
	}{
		{"top-left", Token("left"), Token("top"), "#FF0000"},
		{"top-right", Pixels(50), Pixels(0), "#00FF00"},
		{"bottom-left", Token("left"), Token("bottom"), "#0000FF"},
		{"bottom-right", Token("right"), Token("bottom"), "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := openImage(t, patternImage(100, 100), PNG)
			h.Crop(50, 50, tt.x, tt.y)
			require.NoError(t, h.Err())
			assertDims(t, h, 50, 50)

			for _, p := range []image.Point{{0, 0}, {25, 25}, {49, 49}} {
				c, err := h.ColorAt(p.X, p.Y)
				require.NoError(t, err)
				assert.Equal(t, tt.wantHex, c.Hex, "pixel %v", p)
			}
		})
	}
}

func TestCrop_CopiesWithoutResampling(t *testing.T) {
	h := openImage(t, patternImage(100, 100), PNG)
	h.Crop(20, 20, Token("center"), Token("center"))
	require.NoError(t, h.Err())

	// The 20x20 window around the centre straddles all four quadrants.
	want := map[image.Point]string{
		{9, 9}:   "#FF0000",
		{10, 9}:  "#00FF00",
		{9, 10}:  "#0000FF",
		{10, 10}: "#FFFFFF",
	}
	for p, hex := range want {
		c, err := h.ColorAt(p.X, p.Y)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex, "pixel %v", p)
	}
}

func TestCrop_OutsideSource(t *testing.T) {
	t.Run("png is transparent", func(t *testing.T) {
		h := openImage(t, solidImage(50, 50, red), PNG)
		h.Crop(40, 40, Pixels(30), Pixels(30))
		require.NoError(t, h.Err())

		inside, _ := h.ColorAt(5, 5)
		assert.Equal(t, uint8(255), inside.RGBA.A)
		outside, _ := h.ColorAt(30, 30)
		assert.Equal(t, uint8(0), outside.RGBA.A)
	})

	t.Run("jpeg is black", func(t *testing.T) {
		h := openImage(t, solidImage(50, 50, white), JPEG)
		h.Crop(40, 40, Pixels(30), Pixels(30))
		require.NoError(t, h.Err())

		outside, _ := h.ColorAt(30, 30)
		assert.Equal(t, "#000000", outside.Hex)
		assert.Equal(t, uint8(255), outside.RGBA.A)
	})
}

func TestCrop_InvalidSize(t *testing.T) {
	h := openImage(t, solidImage(50, 50, red), PNG)
	h.Crop(0, 10, Pixels(0), Pixels(0))
	assert.ErrorIs(t, h.Err(), ErrInvalidArgument)
	h.ClearErr()
	assertDims(t, h, 50, 50)

	h.Crop(4000000000, 4000000000, Pixels(0), Pixels(0))
	assert.ErrorIs(t, h.Err(), ErrInvalidArgument)
	h.ClearErr()
	assertDims(t, h, 50, 50)
}
