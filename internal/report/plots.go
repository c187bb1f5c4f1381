package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/wave"
)

var (
	curveColor  = color.RGBA{R: 0, G: 191, B: 255, A: 255}
	markerColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	peakColor   = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// DefaultWidth and DefaultHeight are the size of saved figures.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// SpectrumCurve samples S(omega) at n points from half the minimum to twice
// the maximum frequency of the spectrum.
func SpectrumCurve(s *wave.Spectrum, n int) (XYs, error) {
	if !s.Built() {
		return nil, fmt.Errorf("plotting spectrum: %w", wave.ErrPreconditionViolated)
	}
	if n < 2 {
		return nil, fmt.Errorf("spectrum samples %d: %w", n, wave.ErrInvalidParameter)
	}
	omegas := floats.Span(make([]float64, n), 0.5*s.MinFrequency(), 2*s.MaxFrequency())
	xys := make(XYs, n)
	for i, w := range omegas {
		xys[i] = XY{X: w, Y: s.Density(w)}
	}
	return xys, nil
}

func verticalLine(x, top float64, c color.Color, dashed bool) (*plotter.Line, error) {
	l, err := plotter.NewLine(XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, err
	}
	l.Color = c
	if dashed {
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	return l, nil
}

// SpectrumPlot draws the spectral density with the frequency bounds and peak
// marked.
func SpectrumPlot(s *wave.Spectrum) (*plot.Plot, error) {
	xys, err := SpectrumCurve(s, 400)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bretschneider spectrum, Hs %.2f m", s.SignificantWaveHeight())
	p.X.Label.Text = "frequency (rad/s)"
	p.Y.Label.Text = "S (m² s/rad)"

	curve, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("building spectrum line: %w", err)
	}
	curve.Color = curveColor
	curve.Width = vg.Points(1.5)
	p.Add(curve)

	top := s.Density(s.PeakFrequency())
	markers := []struct {
		name   string
		x      float64
		c      color.Color
		dashed bool
	}{
		{"min", s.MinFrequency(), markerColor, true},
		{"peak", s.PeakFrequency(), peakColor, false},
		{"max", s.MaxFrequency(), markerColor, true},
	}
	for _, m := range markers {
		l, err := verticalLine(m.x, top, m.c, m.dashed)
		if err != nil {
			return nil, fmt.Errorf("building %s marker: %w", m.name, err)
		}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%s %.3f", m.name, m.x), l)
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p, nil
}

// SeriesPlot draws a probe elevation record against time.
func SeriesPlot(s *models.ElevationSeries) (*plot.Plot, error) {
	if len(s.Samples) == 0 {
		return nil, fmt.Errorf("plotting series: no samples")
	}
	xys := make(XYs, len(s.Samples))
	for i, smp := range s.Samples {
		xys[i] = XY{X: smp.Time, Y: smp.Elevation}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Wave elevation at (%.1f, %.1f)", s.X, s.Y)
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "elevation (m)"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("building series line: %w", err)
	}
	line.Color = curveColor
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// Save writes p to path. The format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
