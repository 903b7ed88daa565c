/*
Copyright © 2026 the opsplan authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/planfab/opsplan/lp"
	"github.com/planfab/opsplan/production"
)

const (
	regionXMax    = 160 // boundary lines are sampled over [0, regionXMax]
	regionSamples = 400
	isoLevels     = 5
)

// RegionChart draws the two-variable production problem: the solved
// constraint boundaries, the shaded feasible polygon, dashed isoprofit
// contours between 20% of the optimum and the optimum, and the optimal
// point with its profit annotation. The polygon vertices come from
// lp.Vertices over the same constraint system the solver saw.
func RegionChart(style Style, m production.Model, plan *production.Plan, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Production mix (optimum: x1=%.0f, x2=%.0f)", plan.Units[0], plan.Units[1])
	p.Title.TextStyle.Font.Size = vg.Points(style.FontSize + 5)
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = fmt.Sprintf("x1 (%s, units)", m.Products[0].Name)
	p.Y.Label.Text = fmt.Sprintf("x2 (%s, units)", m.Products[1].Name)
	p.X.Label.TextStyle.Font.Size = vg.Points(style.FontSize + 3)
	p.Y.Label.TextStyle.Font.Size = vg.Points(style.FontSize + 3)
	p.X.Min, p.X.Max = -5, 130
	p.Y.Min, p.Y.Max = -5, 90
	p.Add(plotter.NewGrid())

	prob := m.Problem()

	verts, err := lp.Vertices(prob.AUb, prob.BUb)
	if err != nil {
		return fmt.Errorf("enumerating feasible region: %w", err)
	}
	polyXYs := make(plotter.XYs, len(verts))
	for i, v := range verts {
		polyXYs[i] = plotter.XY{X: v[0], Y: v[1]}
	}
	poly, err := plotter.NewPolygon(polyXYs)
	if err != nil {
		return fmt.Errorf("building region polygon: %w", err)
	}
	poly.Color = regionFill
	poly.LineStyle.Color = paletteBlue
	p.Add(poly)
	p.Legend.Add("feasible region", poly)

	lineColors := []color.Color{paletteBlue, paletteGray}
	solved := 0
	for _, r := range m.Resources {
		if r.Redundant {
			continue
		}
		ln, err := plotter.NewLine(boundaryXYs(r.PerUnit[0], r.PerUnit[1], r.Capacity))
		if err != nil {
			return fmt.Errorf("building %s boundary: %w", r.Name, err)
		}
		ln.LineStyle.Width = vg.Points(2.5)
		ln.LineStyle.Color = lineColors[solved%len(lineColors)]
		p.Add(ln)
		p.Legend.Add(fmt.Sprintf("%s: %gx1 + %gx2 <= %g", r.Name, r.PerUnit[0], r.PerUnit[1], r.Capacity), ln)
		solved++
	}

	levels := make([]float64, isoLevels)
	floats.Span(levels, 0.2*plan.Profit, plan.Profit)
	for i, level := range levels {
		ln, err := plotter.NewLine(isoprofitXYs(m.Products[0].Profit, m.Products[1].Profit, level))
		if err != nil {
			return fmt.Errorf("building isoprofit contour: %w", err)
		}
		ln.LineStyle.Width = vg.Points(1)
		ln.LineStyle.Color = isoGray
		ln.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(ln)
		if i == len(levels)-1 {
			p.Legend.Add("isoprofit lines", ln)
		}
	}

	opt, err := plotter.NewScatter(plotter.XYs{{X: plan.Units[0], Y: plan.Units[1]}})
	if err != nil {
		return fmt.Errorf("building optimum marker: %w", err)
	}
	opt.GlyphStyle = draw.GlyphStyle{
		Color:  optimumRed,
		Radius: vg.Points(6),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(opt)
	p.Legend.Add(fmt.Sprintf("optimum (%.0f, %.0f)", plan.Units[0], plan.Units[1]), opt)

	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: plan.Units[0] + 5, Y: plan.Units[1] + 18}},
		Labels: []string{fmt.Sprintf("maximum profit: %.0f", plan.Profit)},
	})
	if err != nil {
		return fmt.Errorf("building profit annotation: %w", err)
	}
	note.TextStyle[0].Color = optimumRed
	note.TextStyle[0].Font.Size = vg.Points(style.FontSize + 1)
	p.Add(note)

	p.Legend.Top = true

	return p.Save(vg.Length(style.Width)*vg.Inch, vg.Length(style.Height)*vg.Inch, path)
}

// boundaryXYs samples the constraint boundary a1*x1 + a2*x2 = cap,
// clipped at the x1 axis.
func boundaryXYs(a1, a2, cap float64) plotter.XYs {
	xys := make(plotter.XYs, regionSamples)
	for i := range xys {
		x := regionXMax * float64(i) / float64(regionSamples-1)
		y := (cap - a1*x) / a2
		if y < 0 {
			y = 0
		}
		xys[i] = plotter.XY{X: x, Y: y}
	}
	return xys
}

// isoprofitXYs samples the contour p1*x1 + p2*x2 = level.
func isoprofitXYs(p1, p2, level float64) plotter.XYs {
	xys := make(plotter.XYs, regionSamples)
	for i := range xys {
		x := regionXMax * float64(i) / float64(regionSamples-1)
		xys[i] = plotter.XY{X: x, Y: (level - p1*x) / p2}
	}
	return xys
}
