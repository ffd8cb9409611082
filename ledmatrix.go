package ledmatrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/flavioheleno/ledmatrix/pixmap"
	"github.com/flavioheleno/ledmatrix/protocol"
	"github.com/flavioheleno/ledmatrix/transport"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
)

// Opts is the configuration for the LED matrix driver.
type Opts struct {
	// Transport opens the link to the module
	// (default: transport.NewSerial(transport.DefaultConfig()))
	Transport transport.Opener

	// Logger receives a debug event per frame (default: disabled)
	Logger *zerolog.Logger

	// StageRetries is how many times DrawGreyscale resends a failed stage or
	// commit frame before giving up (default: 0, abort on first failure)
	StageRetries int
}

// Dev is the handle of one LED matrix module.
//
// Every command opens the transport, writes one frame, optionally reads one
// response and closes it again. Dev is not safe for concurrent use.
type Dev struct {
	id     string
	opener transport.Opener
	log    zerolog.Logger

	stageRetries int

	matrix *pixmap.Matrix
	resp   []byte
}

// New returns a driver for the module reachable at identifier, e.g.
// /dev/ttyACM0 or COM3 for the default serial transport.
//
// No I/O happens until the first command. opts can be nil to use defaults.
func New(identifier string, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.StageRetries < 0 {
		return nil, errors.New("ledmatrix: stage retries must not be negative")
	}

	d := &Dev{
		id:           identifier,
		opener:       opts.Transport,
		log:          zerolog.Nop(),
		stageRetries: opts.StageRetries,
		matrix:       pixmap.New(),
	}
	if d.opener == nil {
		d.opener = transport.NewSerial(transport.DefaultConfig())
	}
	if opts.Logger != nil {
		d.log = opts.Logger.With().Str("device", identifier).Logger()
	}
	return d, nil
}

// SendCommand sends cmd with params as one frame.
//
// If withResponse is set, it then waits for a response and stores it for
// LastResponse. A read that receives nothing fails with transport.ErrTimeout.
// The stored response is cleared before the exchange, so it stays empty when
// the call fails.
func (d *Dev) SendCommand(cmd protocol.Command, params []byte, withResponse bool) error {
	frame := protocol.Encode(cmd, params)
	if withResponse {
		d.resp = d.resp[:0]
	}

	ch, err := d.opener.Open(d.id)
	if err != nil {
		return fmt.Errorf("ledmatrix: open %s: %w", d.id, err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			d.log.Debug().Err(err).Msg("close")
		}
	}()

	n, err := ch.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("ledmatrix: write %s: %w", cmd, err)
	}
	if !withResponse {
		d.log.Debug().Stringer("cmd", cmd).Int("len", len(frame)).Msg("frame sent")
		return nil
	}

	buf := make([]byte, protocol.ResponseSize)
	n, err = ch.Read(buf)
	if err == nil && n == 0 {
		err = transport.ErrTimeout
	}
	if err != nil {
		return fmt.Errorf("ledmatrix: read %s: %w", cmd, err)
	}
	d.resp = buf
	d.log.Debug().Stringer("cmd", cmd).Int("len", len(frame)).Hex("response", buf[:n]).Msg("frame exchanged")
	return nil
}

// LastResponse returns a copy of the response of the last successful
// response-bearing command. It is empty when that command failed.
func (d *Dev) LastResponse() []byte {
	out := make([]byte, len(d.resp))
	copy(out, d.resp)
	return out
}

// query sends a parameterless command and returns its response.
func (d *Dev) query(cmd protocol.Command) ([]byte, error) {
	if err := d.SendCommand(cmd, nil, true); err != nil {
		return nil, err
	}
	return d.resp, nil
}

// SetBrightness sets the global brightness (0-255).
func (d *Dev) SetBrightness(level uint8) error {
	return d.SendCommand(protocol.Brightness, []byte{level}, false)
}

// Brightness returns the current global brightness.
func (d *Dev) Brightness() (uint8, error) {
	resp, err := d.query(protocol.Brightness)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeByte(resp), nil
}

// DisplayPattern shows one of the built-in firmware patterns.
func (d *Dev) DisplayPattern(p Pattern) error {
	return d.SendCommand(protocol.Pattern, []byte{byte(p)}, false)
}

// SetSleep puts the module to sleep or wakes it up.
func (d *Dev) SetSleep(sleep bool) error {
	return d.SendCommand(protocol.Sleep, []byte{protocol.EncodeBool(sleep)}, false)
}

// Sleeping reports whether the module is asleep.
func (d *Dev) Sleeping() (bool, error) {
	resp, err := d.query(protocol.Sleep)
	if err != nil {
		return false, err
	}
	return protocol.DecodeBool(resp), nil
}

// SetAnimate starts or stops the vertical scrolling of the current image.
func (d *Dev) SetAnimate(animate bool) error {
	return d.SendCommand(protocol.Animate, []byte{protocol.EncodeBool(animate)}, false)
}

// Animating reports whether the module scrolls the current image.
func (d *Dev) Animating() (bool, error) {
	resp, err := d.query(protocol.Animate)
	if err != nil {
		return false, err
	}
	return protocol.DecodeBool(resp), nil
}

// Version returns the firmware version of the module.
func (d *Dev) Version() (protocol.FirmwareVersion, error) {
	resp, err := d.query(protocol.Version)
	if err != nil {
		return protocol.FirmwareVersion{}, err
	}
	return protocol.DecodeVersion(resp), nil
}

// DrawBlackWhite sends the matrix as a single 1-bit frame; every non-zero
// pixel is lit at the current brightness.
func (d *Dev) DrawBlackWhite() error {
	return d.SendCommand(protocol.Draw, d.matrix.PackBits(), false)
}

// DrawGreyscale stages the nine columns of the matrix then commits them.
//
// The sequence is not transactional: the first frame that fails ends it and
// its error is returned, leaving the module with the columns staged so far.
// Opts.StageRetries allows resending a failed frame first.
func (d *Dev) DrawGreyscale() error {
	for x := 0; x < pixmap.Width; x++ {
		col, err := d.matrix.Column(x)
		if err != nil {
			return err
		}
		params := make([]byte, 0, 1+pixmap.Height)
		params = append(params, byte(x))
		params = append(params, col...)
		if err := d.sendStage(protocol.StageCol, params); err != nil {
			return err
		}
	}
	return d.sendStage(protocol.CommitCol, []byte{0x00})
}

func (d *Dev) sendStage(cmd protocol.Command, params []byte) error {
	var err error
	for attempt := 0; attempt <= d.stageRetries; attempt++ {
		if attempt > 0 {
			d.log.Debug().Err(err).Stringer("cmd", cmd).Int("attempt", attempt).Msg("resending frame")
		}
		if err = d.SendCommand(cmd, params, false); err == nil {
			return nil
		}
	}
	d.log.Debug().Err(err).Stringer("cmd", cmd).Msg("greyscale draw aborted")
	return err
}

// StartGame starts one of the built-in games.
//
// GameGameOfLife takes exactly one extra byte, its LifeStart board; the other
// games take none. Parameter errors are reported before any I/O.
func (d *Dev) StartGame(g Game, extra ...uint8) error {
	switch {
	case g == GameGameOfLife && len(extra) == 0:
		return ErrExtraParamRequired
	case g != GameGameOfLife && len(extra) > 0, len(extra) > 1:
		return ErrTooManyParams
	}
	return d.SendCommand(protocol.StartGame, append([]byte{byte(g)}, extra...), false)
}

// QuitGame stops the running game.
func (d *Dev) QuitGame() error {
	return d.GameControl(ControlQuit)
}

// GameControl forwards a key press to the running game.
func (d *Dev) GameControl(c Control) error {
	return d.SendCommand(protocol.GameControl, []byte{byte(c)}, false)
}

// SetPixel sets the intensity of one pixel of the local matrix. Nothing is
// sent to the module.
func (d *Dev) SetPixel(value uint8, x, y int) error {
	return d.matrix.SetPixel(value, x, y)
}

// Blit copies block, given as columns, into the local matrix with its top
// left corner at (x, y).
func (d *Dev) Blit(block [][]uint8, x, y int) error {
	return d.matrix.Blit(block, x, y)
}

// Clear zeroes the local matrix.
func (d *Dev) Clear() {
	d.matrix.Clear()
}

// Matrix returns a copy of the local matrix, indexed [x][y].
func (d *Dev) Matrix() [pixmap.Width][pixmap.Height]uint8 {
	return d.matrix.Snapshot()
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.matrix.Bounds()
}

// Draw renders src into the local matrix and pushes the result with
// DrawGreyscale. The dst rectangle is clipped to the display bounds; src is
// read starting at sp.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.matrix, dst, src, sp, draw.Src)
	return d.DrawGreyscale()
}

// Halt puts the module to sleep. SetSleep(false) wakes it up again.
func (d *Dev) Halt() error {
	return d.SetSleep(true)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ledmatrix.Dev{%s}", d.id)
}

var _ display.Drawer = &Dev{}
