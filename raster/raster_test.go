package raster

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const halfSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 9 34">
  <rect x="0" y="0" width="9" height="17" fill="#ffffff"/>
</svg>`

func TestSVG(t *testing.T) {
	img, err := SVG(strings.NewReader(halfSVG))
	require.NoError(t, err)
	assert.Equal(t, Bounds, img.Bounds())
	for x := 0; x < 9; x++ {
		assert.Greater(t, img.GrayAt(x, 5).Y, uint8(200), "x=%d", x)
		assert.Less(t, img.GrayAt(x, 30).Y, uint8(50), "x=%d", x)
	}
}

func TestSVGKeepsAspect(t *testing.T) {
	// A square view box lands in the middle rows.
	const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <rect x="0" y="0" width="10" height="10" fill="#ffffff"/>
</svg>`
	img, err := SVG(strings.NewReader(square))
	require.NoError(t, err)
	assert.Less(t, img.GrayAt(4, 2).Y, uint8(50))
	assert.Greater(t, img.GrayAt(4, 17).Y, uint8(200))
	assert.Less(t, img.GrayAt(4, 31).Y, uint8(50))
}

func TestSVGError(t *testing.T) {
	_, err := SVG(strings.NewReader(`<svg><rect`))
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	img := Text("Hi")
	assert.Equal(t, image.Rect(0, 0, 14, 13), img.Bounds())
	lit := 0
	for _, p := range img.Pix {
		if p > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)

	assert.True(t, Text("").Bounds().Empty())
}

func TestRotate(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(0, 0, color.Gray{Y: 1})
	src.SetGray(2, 1, color.Gray{Y: 2})

	out := Rotate(src)
	assert.Equal(t, image.Rect(0, 0, 2, 3), out.Bounds())
	// Top-left goes to top-right, bottom-right to bottom-left.
	assert.Equal(t, uint8(1), out.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(2), out.GrayAt(0, 2).Y)
}

func TestFit(t *testing.T) {
	white := image.NewUniform(color.White)

	// 18x68 scales by one half to fill the whole matrix.
	out := Fit(&bounded{white, image.Rect(0, 0, 18, 68)})
	assert.Equal(t, Bounds, out.Bounds())
	assert.Equal(t, uint8(255), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), out.GrayAt(8, 33).Y)

	// A wide image is letterboxed vertically.
	out = Fit(&bounded{white, image.Rect(0, 0, 90, 30)})
	assert.Equal(t, uint8(0), out.GrayAt(4, 0).Y)
	assert.Equal(t, uint8(255), out.GrayAt(4, 17).Y)
	assert.Equal(t, uint8(0), out.GrayAt(4, 33).Y)

	assert.Equal(t, Canvas(), Fit(image.NewGray(image.Rectangle{})))
}

// bounded gives a uniform colour finite bounds.
type bounded struct {
	*image.Uniform
	r image.Rectangle
}

func (b *bounded) Bounds() image.Rectangle { return b.r }
