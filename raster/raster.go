// Package raster produces greyscale images sized for the LED matrix from SVG
// documents, text and arbitrary images.
//
// The results can be passed to ledmatrix.Dev.Draw.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/flavioheleno/ledmatrix/pixmap"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Bounds is the size of the matrix.
var Bounds = image.Rect(0, 0, pixmap.Width, pixmap.Height)

// Canvas returns a black image the size of the matrix.
func Canvas() *image.Gray {
	return image.NewGray(Bounds)
}

// SVG rasterises the SVG document read from r onto a matrix-sized canvas.
// The view box is scaled to fit, keeping its aspect ratio, and centred.
// Painted areas come out bright, the background black.
func SVG(r io.Reader) (*image.Gray, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: read svg: %w", err)
	}
	w, h := float64(pixmap.Width), float64(pixmap.Height)
	if vw, vh := icon.ViewBox.W, icon.ViewBox.H; vw > 0 && vh > 0 {
		s := math.Min(w/vw, h/vh)
		icon.SetTarget((w-vw*s)/2, (h-vh*s)/2, vw*s, vh*s)
	} else {
		icon.SetTarget(0, 0, w, h)
	}

	rgba := image.NewRGBA(Bounds)
	scanner := rasterx.NewScannerGV(pixmap.Width, pixmap.Height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(pixmap.Width, pixmap.Height, scanner), 1)

	out := Canvas()
	draw.Draw(out, out.Bounds(), rgba, image.Point{}, draw.Src)
	return out, nil
}

// Text renders s on one line with the 7×13 basic font, white on black. The
// image is as wide as the text and 13 pixels high; use Rotate and Fit to put
// it on the matrix.
func Text(s string) *image.Gray {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	width := d.MeasureString(s).Ceil()
	img := image.NewGray(image.Rect(0, 0, width, face.Height))
	d.Dst = img
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)
	return img
}

// Rotate returns src turned 90° clockwise, so that a line of text runs down
// the matrix.
func Rotate(src image.Image) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, src.At(x, y))
		}
	}
	return out
}

// Fit scales src to the largest size that fits the matrix, keeping its
// aspect ratio, and centres it on a black canvas.
func Fit(src image.Image) *image.Gray {
	out := Canvas()
	b := src.Bounds()
	if b.Empty() {
		return out
	}
	s := math.Min(float64(pixmap.Width)/float64(b.Dx()), float64(pixmap.Height)/float64(b.Dy()))
	w := max(1, int(math.Round(float64(b.Dx())*s)))
	h := max(1, int(math.Round(float64(b.Dy())*s)))
	x := (pixmap.Width - w) / 2
	y := (pixmap.Height - h) / 2
	draw.BiLinear.Scale(out, image.Rect(x, y, x+w, y+h), src, b, draw.Src, nil)
	return out
}
