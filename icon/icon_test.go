// SPDX-License-Identifier: Unlicense OR MIT

package icon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/clydehsieh/buttoninsets/geometry"
)

func TestResize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 48, 24))
	tests := []struct {
		fit  geometry.Fit
		w, h int
		want image.Point
	}{
		{geometry.Contain, 12, 12, image.Pt(12, 6)},
		{geometry.Fill, 12, 12, image.Pt(12, 12)},
		{geometry.Cover, 12, 12, image.Pt(24, 12)},
		{geometry.ScaleDown, 100, 100, image.Pt(48, 24)},
		// Never collapses to an empty image.
		{geometry.Contain, 1, 0, image.Pt(1, 1)},
	}
	for _, tc := range tests {
		got := Resize(src, tc.w, tc.h, tc.fit).Bounds().Size()
		if got != tc.want {
			t.Errorf("%v into %dx%d: got %v, want %v", tc.fit, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestResizeKeepsColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	red := color.NRGBA{R: 0xff, A: 0xff}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			src.SetNRGBA(x, y, red)
		}
	}
	dst := Resize(src, 12, 12, geometry.Contain)
	got := dst.NRGBAAt(6, 6)
	if got.R < 0xf0 || got.A < 0xf0 || got.G > 0x10 || got.B > 0x10 {
		t.Errorf("center pixel = %v, want close to %v", got, red)
	}
}

func TestDefault(t *testing.T) {
	img, ok := Default().(*image.NRGBA)
	if !ok {
		t.Fatalf("default icon is %T, want *image.NRGBA", Default())
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("default icon is not square: %v", b)
	}
	if c := img.NRGBAAt(b.Min.X, b.Min.Y); c.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", c)
	}
	var opaque int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 0xff {
				continue
			}
			opaque++
			if c.R < 0xf0 || c.G < 0xf0 || c.B < 0xf0 {
				t.Fatalf("pixel (%d, %d) = %v, want white", x, y, c)
			}
		}
	}
	if opaque == 0 {
		t.Error("default icon is empty")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ind.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, Default()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds() != Default().Bounds() {
		t.Errorf("loaded bounds %v, want %v", img.Bounds(), Default().Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}
