package stream

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const headerSize = 4

// ErrShortFrame is returned when binary frame data is truncated.
var ErrShortFrame = errors.New("short frame data")

// Frame represents a width x height matrix of RGB pixels for a display.
type Frame struct {
	Width  int
	Height int
	pixels []colorful.Color
}

// NewFrame creates a black frame.
func NewFrame(width, height int) *Frame {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}

	f := new(Frame)
	f.Width = width
	f.Height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Set colours the pixel at column x, row y. Out of range writes are ignored.
func (f *Frame) Set(x, y int, c colorful.Color) {
	if f.inBounds(x, y) {
		f.pixels[y*f.Width+x] = c
	}
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) colorful.Color {
	if !f.inBounds(x, y) {
		return colorful.Color{}
	}
	return f.pixels[y*f.Width+x]
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// InterpolateFrame blends two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.Width, f.Height)
	for i := 0; i < len(f.pixels) && i < len(f2.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint).Clamped()
	}

	return out
}

// MarshalBinary converts a Frame into its wire form: little-endian uint16
// width and height followed by one RGB triplet per pixel, row by row.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if f.Width > 0xffff || f.Height > 0xffff {
		return nil, fmt.Errorf("frame %dx%d too large", f.Width, f.Height)
	}

	data = make([]byte, headerSize, headerSize+len(f.pixels)*3)
	binary.LittleEndian.PutUint16(data[0:], uint16(f.Width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.Height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return ErrShortFrame
	}

	width := int(binary.LittleEndian.Uint16(data[0:]))
	height := int(binary.LittleEndian.Uint16(data[2:]))
	body := data[headerSize:]
	if len(body) < width*height*3 {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrShortFrame, width, height, width*height*3, len(body))
	}

	*f = *NewFrame(width, height)
	for i := range f.pixels {
		f.pixels[i] = colorful.Color{
			R: float64(body[i*3]) / 255.0,
			G: float64(body[i*3+1]) / 255.0,
			B: float64(body[i*3+2]) / 255.0,
		}
	}
	return nil
}
