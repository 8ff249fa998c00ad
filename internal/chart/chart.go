// Package chart renders simulation results as PNG line charts.
//
// Both charts use fixed y ranges so that runs can be compared by eye:
// 0-24 % for O2/CO2 and 0-5 ppm for ethylene. The x axis always spans
// 0 to the simulated duration.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/guttosm/mapsim/internal/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fixed axis ranges.
const (
	AtmosphereMaxPct = 24.0
	EthyleneMaxPPM   = 5.0
)

// ErrEmptyResult is returned when there is nothing to draw.
var ErrEmptyResult = errors.New("result has no points")

var (
	background    = color.RGBA{R: 0xdf, G: 0xf6, B: 0xff, A: 0xff} // pale blue
	oxygenColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	co2Color      = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	ethyleneColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	withoutColor  = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
)

// Options controls rendering.
type Options struct {
	// MaxPoints caps the number of points per line. Full-resolution runs have
	// over a million points, far more than a 6 inch chart can show.
	MaxPoints int
	Width     vg.Length
	Height    vg.Length
	DPI       int
	// ShowUnscavenged adds the ethylene curve without scavenger uptake.
	ShowUnscavenged bool
}

// DefaultOptions returns a 6x4 inch chart at 100 dpi with 1000 points per line.
func DefaultOptions() Options {
	return Options{
		MaxPoints: 1000,
		Width:     6 * vg.Inch,
		Height:    4 * vg.Inch,
		DPI:       100,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxPoints <= 0 {
		o.MaxPoints = d.MaxPoints
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	return o
}

// RenderAtmosphere draws predicted O2 and CO2 in percent.
func RenderAtmosphere(r *model.SimulationResult, opts Options) ([]byte, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrEmptyResult
	}
	opts = opts.withDefaults()
	s := r.Downsample(opts.MaxPoints)

	p := newPlot("Gas concentration (%)")
	if err := addLine(p, "Predicted O₂", s.TimesInDays, s.OxygenPct, oxygenColor, false); err != nil {
		return nil, err
	}
	if err := addLine(p, "Predicted CO₂", s.TimesInDays, s.CarbonDioxidePct, co2Color, false); err != nil {
		return nil, err
	}
	return encode(p, s.XLimitDays, AtmosphereMaxPct, opts)
}

// RenderEthylene draws predicted ethylene in ppm.
func RenderEthylene(r *model.SimulationResult, opts Options) ([]byte, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrEmptyResult
	}
	opts = opts.withDefaults()
	s := r.Downsample(opts.MaxPoints)

	p := newPlot("Ethylene (ppm)")
	if err := addLine(p, "Predicted C₂H₄", s.TimesInDays, s.EthylenePPM, ethyleneColor, false); err != nil {
		return nil, err
	}
	if opts.ShowUnscavenged {
		if err := addLine(p, "C₂H₄ without scavenger", s.TimesInDays, s.UnscavengedEthylenePPM, withoutColor, true); err != nil {
			return nil, err
		}
	}
	return encode(p, s.XLimitDays, EthyleneMaxPPM, opts)
}

func newPlot(yLabel string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = background
	p.X.Label.Text = "Time (days)"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, name string, xs, ys []float64, c color.Color, dashed bool) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build %s line: %w", name, err)
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	if dashed {
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// encode fixes the axis ranges after every line is added (Add widens them to
// the data) and writes the PNG.
func encode(p *plot.Plot, xMax, yMax float64, opts Options) ([]byte, error) {
	p.X.Min, p.X.Max = 0, xMax
	if xMax <= 0 {
		p.X.Max = 1
	}
	p.Y.Min, p.Y.Max = 0, yMax

	canvas := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
