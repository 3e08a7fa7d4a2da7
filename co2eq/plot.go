package co2eq

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Rendered chart dimensions.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// PlotResult renders one time-series chart with a line per species.
// Palette maps species names (as printed by Species.String) to
// "#rrggbb" colors; species without an entry fall back to the plotutil
// cycle.
func PlotResult(r *CO2eqResult, title string, palette map[string]string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %s (H=%d a)", title, r.Metric, r.Horizon)
	p.X.Label.Text = "year"
	p.Y.Label.Text = "CO2-eq emissions"
	p.Legend.Top = true

	for i := Total; i < NumSpecies; i++ {
		xys := make(plotter.XYs, len(r.Years))
		for k := range r.Years {
			xys[k].X = float64(r.Years[k])
			xys[k].Y = r.Values[i][k]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("co2eq: plotting %s: %w", i, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = speciesColor(i, palette)
		p.Add(line)
		p.Legend.Add(i.String(), line)
	}
	return p, nil
}

// PlotFuelUse renders the background fuel-use series, one line per
// scenario column. Names beyond the available series are ignored;
// missing names become "scenario N".
func PlotFuelUse(fu *FuelUse, names []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "background fuel use"
	p.X.Label.Text = "year"
	p.Y.Label.Text = "fuel use"
	p.Legend.Top = true

	for j, series := range fu.Series {
		xys := make(plotter.XYs, len(fu.Years))
		for k := range fu.Years {
			xys[k].X = float64(fu.Years[k])
			xys[k].Y = series[k]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("co2eq: plotting fuel use: %w", err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = plotutil.Color(j)
		name := fmt.Sprintf("scenario %d", j+1)
		if j < len(names) {
			name = names[j]
		}
		p.Add(line)
		p.Legend.Add(name, line)
	}
	return p, nil
}

// SavePlot writes the chart to path; the image format follows the file
// extension (.png, .svg, .pdf).
func SavePlot(p *plot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("co2eq: saving %s: %w", path, err)
	}
	logger.Infof("chart written: %s", path)
	return nil
}

func speciesColor(s Species, palette map[string]string) color.Color {
	if hex, ok := palette[s.String()]; ok {
		if c, err := parseHexColor(hex); err == nil {
			return c
		}
		logger.Warnf("palette entry for %s is not a #rrggbb color: %q", s, hex)
	}
	return plotutil.Color(int(s))
}

func parseHexColor(hex string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
