package pixmap

import (
	"errors"
	"image"
	"image/color"
)

const (
	// Width is the number of LED columns.
	Width = 9
	// Height is the number of LED rows.
	Height = 34
	// PackedSize is the length of the 1-bit encoding: ceil(9*34/8).
	PackedSize = (Width*Height + 7) / 8
)

var (
	// ErrXOutOfBounds is returned when a write would land outside columns 0..8.
	ErrXOutOfBounds = errors.New("pixmap: x out of bounds")
	// ErrYOutOfBounds is returned when a write would land outside rows 0..33.
	ErrYOutOfBounds = errors.New("pixmap: y out of bounds")
)

// Matrix is the 9×34 intensity grid. The zero value is an all-off matrix ready to use.
type Matrix struct {
	pix [Width][Height]uint8 // column-major, pix[x][y]
}

// New returns a zeroed Matrix.
func New() *Matrix {
	return &Matrix{}
}

// SetPixel sets the intensity of the LED at (x, y).
//
// x is validated before y, so a call with both coordinates out of range
// returns ErrXOutOfBounds. The matrix is left untouched on error.
func (m *Matrix) SetPixel(value uint8, x, y int) error {
	if x < 0 || x >= Width {
		return ErrXOutOfBounds
	}
	if y < 0 || y >= Height {
		return ErrYOutOfBounds
	}
	m.pix[x][y] = value
	return nil
}

// Pixel returns the intensity at (x, y), or 0 outside the grid.
func (m *Matrix) Pixel(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return m.pix[x][y]
}

// Blit copies block into the matrix with its top-left corner at (x, y).
//
// block is a list of columns, each a list of row values; columns may have
// different lengths. The block height is the length of its longest column.
//
// Unlike SetPixel, the y axis is validated first: a block that overflows both
// axes returns ErrYOutOfBounds. Columns shorter than the block height leave the
// cells below them unchanged. Nothing is written on error.
func (m *Matrix) Blit(block [][]uint8, x, y int) error {
	ySize := 0
	for _, col := range block {
		if len(col) > ySize {
			ySize = len(col)
		}
	}
	if y < 0 || y+ySize > Height {
		return ErrYOutOfBounds
	}
	if x < 0 || x+len(block) > Width {
		return ErrXOutOfBounds
	}

	for i, col := range block {
		copy(m.pix[x+i][y:], col)
	}
	return nil
}

// Clear sets every LED to 0.
func (m *Matrix) Clear() {
	m.pix = [Width][Height]uint8{}
}

// Snapshot returns a copy of the grid indexed as [x][y].
func (m *Matrix) Snapshot() [Width][Height]uint8 {
	return m.pix
}

// Column returns a copy of the Height intensities of column x, top to bottom.
func (m *Matrix) Column(x int) ([]byte, error) {
	if x < 0 || x >= Width {
		return nil, ErrXOutOfBounds
	}
	col := make([]byte, Height)
	copy(col, m.pix[x][:])
	return col, nil
}

// PackBits encodes the matrix with one bit per LED.
//
// LED (x, y) has index x + 9*y; it is stored in bit index%8 of byte index/8.
// Any non-zero intensity is on. The last 6 bits of the final byte are unused.
func (m *Matrix) PackBits() []byte {
	vals := make([]byte, PackedSize)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if m.pix[x][y] == 0 {
				continue
			}
			index := x + Width*y
			vals[index/8] |= 1 << (index % 8)
		}
	}
	return vals
}

// ColorModel returns color.GrayModel.
func (m *Matrix) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the rectangle (0,0)-(9,34).
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns the color of the LED at (x, y).
// It implements the image.Image interface.
func (m *Matrix) At(x, y int) color.Color {
	return m.GrayAt(x, y)
}

// GrayAt returns the color.Gray of the LED at (x, y).
func (m *Matrix) GrayAt(x, y int) color.Gray {
	return color.Gray{Y: m.Pixel(x, y)}
}

// Set sets the LED at (x, y) to the luminance of c. Points outside the grid are ignored.
// It implements the draw.Image interface.
func (m *Matrix) Set(x, y int, c color.Color) {
	_ = m.SetPixel(color.GrayModel.Convert(c).(color.Gray).Y, x, y)
}

// SetGray sets the LED at (x, y) without color conversion.
func (m *Matrix) SetGray(x, y int, c color.Gray) {
	_ = m.SetPixel(c.Y, x, y)
}
