// SPDX-License-Identifier: Unlicense OR MIT

// Package export writes diagrams of button geometry for viewing
// outside the application.
package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"

	"github.com/clydehsieh/buttoninsets/geometry"
)

// DefaultScale is the number of diagram pixels per dp.
const DefaultScale = 4

// margin around the frames, in dp.
const margin = 8

// DiagramOptions configures SaveDiagram.
type DiagramOptions struct {
	// Path is the output file.
	Path string
	// Format is "svg" or "png". Empty infers it from the extension of Path.
	Format string
	Frames geometry.Frames
	// Scale defaults to DefaultScale.
	Scale float64
}

var (
	colorBounds  = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	colorContent = color.NRGBA{R: 0x44, G: 0x47, B: 0x5a, A: 0xff}
	colorImage   = color.NRGBA{R: 0xff, A: 0xc0}
	colorTitle   = color.NRGBA{B: 0xff, A: 0xc0}
	colorText    = color.NRGBA{A: 0xff}
)

// SaveDiagram writes a diagram of opts.Frames to opts.Path.
func SaveDiagram(opts DiagramOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}
	var write func(io.Writer, geometry.Frames, float64) error
	switch format {
	case "svg":
		write = WriteSVG
	case "png":
		write = WritePNG
	default:
		return fmt.Errorf("unsupported diagram format %q (want svg or png)", format)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("create diagram: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := write(bw, opts.Frames, scale); err != nil {
		f.Close()
		return fmt.Errorf("write %s diagram: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// canvas maps dp coordinates into a diagram with a margin around the
// union of all frames.
type canvas struct {
	origin geometry.Rect
	scale  float64
}

func newCanvas(f geometry.Frames, scale float64) canvas {
	u := f.Union()
	u.X -= margin
	u.Y -= margin
	u.Width += 2 * margin
	u.Height += 2 * margin
	return canvas{origin: u, scale: scale}
}

func (c canvas) size() (int, int) {
	return int(math.Ceil(float64(c.origin.Width) * c.scale)),
		int(math.Ceil(float64(c.origin.Height) * c.scale))
}

func (c canvas) rect(r geometry.Rect) (x, y, w, h float64) {
	return float64(r.X-c.origin.X) * c.scale,
		float64(r.Y-c.origin.Y) * c.scale,
		float64(r.Width) * c.scale,
		float64(r.Height) * c.scale
}

func caption(f geometry.Frames) string {
	return fmt.Sprintf("padding %.1f", f.Padding())
}

// WriteSVG writes an SVG diagram of f.
func WriteSVG(w io.Writer, f geometry.Frames, scale float64) error {
	c := newCanvas(f, scale)
	width, height := c.size()
	ew := &errWriter{w: w}

	s := svg.New(ew)
	s.Start(width, height+24)
	s.Rect(0, 0, width, height+24, "fill:white")
	rect := func(r geometry.Rect, style string) {
		x, y, w, h := c.rect(r)
		s.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(w)), int(math.Round(h)), style)
	}
	rect(f.Bounds, "fill:"+hex(colorBounds))
	rect(f.Content, "fill:none;stroke:"+hex(colorContent)+";stroke-width:2;stroke-dasharray:6,4")
	rect(f.Image, "fill:"+hex(colorImage)+";fill-opacity:0.75")
	rect(f.Title, "fill:"+hex(colorTitle)+";fill-opacity:0.75")
	s.Text(4, height+16, caption(f), "font-family:sans-serif;font-size:14px;fill:"+hex(colorText))
	s.End()
	return ew.err
}

// WritePNG writes a PNG diagram of f.
func WritePNG(w io.Writer, f geometry.Frames, scale float64) error {
	c := newCanvas(f, scale)
	width, height := c.size()

	dc := gg.NewContext(width, height+24)
	dc.SetColor(color.White)
	dc.Clear()

	fill := func(r geometry.Rect, col color.Color) {
		dc.DrawRectangle(c.rect(r))
		dc.SetColor(col)
		dc.Fill()
	}
	fill(f.Bounds, colorBounds)

	dc.DrawRectangle(c.rect(f.Content))
	dc.SetColor(colorContent)
	dc.SetLineWidth(2)
	dc.SetDash(6, 4)
	dc.Stroke()
	dc.SetDash()

	fill(f.Image, colorImage)
	fill(f.Title, colorTitle)

	dc.SetColor(colorText)
	dc.DrawString(caption(f), 4, float64(height)+16)
	return dc.EncodePNG(w)
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
