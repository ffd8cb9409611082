// Package pixmap provides the in-memory pixel buffer of the LED matrix module.
//
// The module has 9 columns and 34 rows of LEDs. Each LED is driven with an 8-bit
// intensity, so a Matrix is simply a 9×34 grid of uint8 values.
//
// Coordinates:
//
//	(0,0) ─────────▶ x (0..8)
//	  │
//	  │
//	  ▼
//	  y (0..33)              (8,33) is the bottom-right LED
//
// Two wire encodings are derived from the grid:
//
// - PackBits: 1-bit per LED, 39 bytes, used by the DRAW command
// - Column: the 34 raw intensities of one column, used by STAGE_COL
//
// Matrix also implements image.Image and draw.Image with color.GrayModel, so the
// standard image/draw package can render into it:
//
//	m := pixmap.New()
//	draw.Draw(m, m.Bounds(), image.NewUniform(color.Gray{Y: 0x40}), image.Point{}, draw.Src)
//
// A Matrix is not safe for concurrent use.
package pixmap
