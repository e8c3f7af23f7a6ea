// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that shows how image, title and content insets move the
// parts of a button. Drag the sliders; the resulting frames are logged.

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/clydehsieh/buttoninsets/export"
	"github.com/clydehsieh/buttoninsets/geometry"
	"github.com/clydehsieh/buttoninsets/icon"
	"github.com/clydehsieh/buttoninsets/internal/config"
	"github.com/clydehsieh/buttoninsets/internal/logger"
	"github.com/clydehsieh/buttoninsets/ui"
)

var (
	configPath = flag.String("config", "", "configuration file (default $"+config.EnvPath+" or built-in)")
	logMode    = flag.String("log", "", "log mode: development or production (overrides the config)")
	screenshot = flag.String("screenshot", "", "save a screenshot to a PNG file and exit")
	diagram    = flag.String("diagram", "", "save a geometry diagram (.svg or .png) and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buttoninsets: %v\n", err)
		os.Exit(1)
	}
	if *logMode != "" {
		cfg.Log.Mode = *logMode
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buttoninsets: create logger: %v\n", err)
		os.Exit(1)
	}

	page, err := newPage(cfg, log)
	if err != nil {
		exit(log, err)
	}

	switch {
	case *diagram != "":
		exit(log, saveDiagram(cfg, page, *diagram))
	case *screenshot != "":
		exit(log, saveScreenshot(cfg, page, *screenshot))
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		exit(log, loop(w, page))
	}()
	app.Main()
}

// exit flushes the log and terminates the process, reporting err if set.
func exit(log *logger.Logger, err error) {
	if err != nil {
		log.Error("buttoninsets failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
	os.Exit(0)
}

func newPage(cfg config.Config, log *logger.Logger) (*ui.Page, error) {
	src := icon.Default()
	if cfg.Button.Image != "" {
		img, err := icon.Load(cfg.Button.Image)
		if err != nil {
			return nil, err
		}
		src = img
	}
	imgSize := geometry.Size{Width: cfg.Button.ImageWidth, Height: cfg.Button.ImageHeight}
	// Rasterize for the densest common display so the image stays sharp.
	const density = 3
	img := icon.Resize(src, int(imgSize.Width*density), int(imgSize.Height*density), cfg.Button.ParsedFit())
	fitted := cfg.Button.ParsedFit().Scale(
		geometry.Size{Width: float32(src.Bounds().Dx()), Height: float32(src.Bounds().Dy())},
		imgSize,
	)

	btn := ui.NewButton(
		cfg.Button.Title,
		unit.Sp(cfg.Button.TextSize),
		geometry.Size{Width: cfg.Button.Width, Height: cfg.Button.Height},
		img,
		fitted,
	)
	// Presets log frames right away, so the title must be measured first.
	btn.Measure(layout.Context{Ops: new(op.Ops)}, ui.NewTheme())
	log.Info("button ready",
		"title", cfg.Button.Title,
		"image", imageName(cfg.Button.Image),
		"fit", cfg.Button.ParsedFit().String(),
		"titleWidth", btn.Frames().Title.Width,
	)

	page := ui.NewPage(btn, log)
	page.Preset(ui.ImageSlot, cfg.Insets.Image.Get)
	page.Preset(ui.TitleSlot, cfg.Insets.Title.Get)
	page.Preset(ui.ContentSlot, cfg.Insets.Content.Get)
	return page, nil
}

func imageName(path string) string {
	if path == "" {
		return "default"
	}
	return path
}

func loop(w *app.Window, page *ui.Page) error {
	th := ui.NewTheme()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			page.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

// saveDiagram measures the title without a window and writes the frames
// produced by the configured insets.
func saveDiagram(cfg config.Config, page *ui.Page, path string) error {
	size, err := export.MeasureTitle(cfg.Button.Title, float64(cfg.Button.TextSize))
	if err != nil {
		return err
	}
	spec := page.Button.Spec()
	spec.TitleSize = size
	return export.SaveDiagram(export.DiagramOptions{
		Path:   path,
		Frames: geometry.Layout(spec),
	})
}

func saveScreenshot(cfg config.Config, page *ui.Page, path string) error {
	const scale = 2
	sz := image.Point{X: int(cfg.Window.Width * scale), Y: int(cfg.Window.Height * scale)}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return fmt.Errorf("create headless window: %w", err)
	}
	defer w.Release()

	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	page.Layout(gtx, ui.NewTheme())
	if err := w.Frame(gtx.Ops); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return f.Close()
}
