// SPDX-License-Identifier: Unlicense OR MIT

package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clydehsieh/buttoninsets/geometry"
	"github.com/clydehsieh/buttoninsets/inset"
)

func frames() geometry.Frames {
	return geometry.Layout(geometry.Spec{
		Size:      geometry.Size{Width: 150, Height: 25},
		ImageSize: geometry.Size{Width: 12, Height: 12},
		TitleSize: geometry.Size{Width: 60, Height: 15},
		Image:     inset.Inset{Left: -40, Top: 20},
		Content:   inset.Inset{Left: 10, Right: 10},
	})
}

func TestSaveDiagram_SVGAndPNG(t *testing.T) {
	tmp := t.TempDir()
	cases := []struct {
		name string
		file string
	}{
		{"svg", "geometry.svg"},
		{"png", "geometry.png"},
		{"upper", "GEOMETRY.PNG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(tmp, tc.file)
			if err := SaveDiagram(DiagramOptions{Path: out, Frames: frames()}); err != nil {
				t.Fatalf("SaveDiagram error: %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("output not created: %v", err)
			}
			if info.Size() == 0 {
				t.Fatalf("output file is empty")
			}
		})
	}
}

func TestSaveDiagram_InvalidFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "geometry.txt")
	err := SaveDiagram(DiagramOptions{Path: out, Frames: frames()})
	if err == nil {
		t.Fatalf("expected error for invalid format")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output created for invalid format")
	}
}

func TestWritePNGSize(t *testing.T) {
	f := frames()
	var buf bytes.Buffer
	if err := WritePNG(&buf, f, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	u := f.Union()
	wantW := int((u.Width + 2*margin) * 2)
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("width = %d, want %d", got, wantW)
	}
}

func TestWriteSVGContent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, frames(), DefaultScale); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if got := strings.Count(out, "<rect"); got != 5 {
		t.Errorf("got %d rects, want 5", got)
	}
	if !strings.Contains(out, "padding") {
		t.Errorf("caption missing")
	}
}

func TestMeasureTitle(t *testing.T) {
	short, err := MeasureTitle("Sec", 12)
	if err != nil {
		t.Fatal(err)
	}
	long, err := MeasureTitle("Secondary", 12)
	if err != nil {
		t.Fatal(err)
	}
	if short.Width <= 0 || short.Height <= 0 {
		t.Fatalf("empty measurement %v", short)
	}
	if long.Width <= short.Width {
		t.Errorf("longer title is not wider: %v <= %v", long, short)
	}
	if long.Height != short.Height {
		t.Errorf("heights differ: %v != %v", long.Height, short.Height)
	}
}
