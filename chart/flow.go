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
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/planfab/opsplan/transport"
)

// The diagram is laid out in an abstract 16x13.5 unit space and scaled
// to the style's pixel width; the height follows the layout's aspect
// ratio. Warehouses form a left column, bases a right column, used
// routes the arrows between them.
const (
	flowUnitsW = 16.0
	flowUnitsH = 13.5

	nodeW       = 2.8
	nodeH       = 1.3
	warehouseX  = 2.0
	baseX       = 12.0
	cheapCutoff = 7 // unit cost <= cheap, >= cheap+1 expensive
)

type flowCanvas struct {
	dc    *gg.Context
	scale float64 // pixels per layout unit
}

// x and y map layout units to pixels; the layout's y axis points up.
func (c flowCanvas) x(u float64) float64 { return (u + 1) * c.scale }
func (c flowCanvas) y(u float64) float64 { return (flowUnitsH - 0.5 - u) * c.scale }

// FlowDiagram draws the transportation plan as a network: labeled
// warehouse and base boxes with their supply/demand, and for every
// used route a directed arrow whose width scales with the shipped
// quantity and whose color marks the lane as cheap or expensive.
func FlowDiagram(style Style, m transport.Model, plan *transport.Plan, path string) error {
	scale := style.Width * float64(style.DPI) / flowUnitsW
	c := flowCanvas{
		dc:    gg.NewContext(int(flowUnitsW*scale), int(flowUnitsH*scale)),
		scale: scale,
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parsing bold font: %w", err)
	}
	faces := struct {
		title, label, info, small font.Face
	}{
		title: truetype.NewFace(bold, &truetype.Options{Size: style.pxPerPt(style.FontSize + 6)}),
		label: truetype.NewFace(bold, &truetype.Options{Size: style.pxPerPt(style.FontSize + 3)}),
		info:  truetype.NewFace(regular, &truetype.Options{Size: style.pxPerPt(style.FontSize + 1)}),
		small: truetype.NewFace(regular, &truetype.Options{Size: style.pxPerPt(style.FontSize - 1)}),
	}

	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()

	c.dc.SetHexColor(outlineHex)
	c.dc.SetFontFace(faces.title)
	c.dc.DrawStringAnchored("Base supply network (transportation problem)", c.x(7), c.y(12.7), 0.5, 0.5)
	c.dc.SetFontFace(faces.info)
	c.dc.DrawStringAnchored(fmt.Sprintf("Minimum total cost: %.0f", plan.TotalCost), c.x(7), c.y(11.9), 0.5, 0.5)

	warehouseYs := spread(len(m.Warehouses), 8, 3)
	baseYs := spread(len(m.Bases), 10, 1)

	// arrows go below boxes and labels
	for i := range m.Warehouses {
		offset := -0.30
		if i%2 == 1 {
			offset = 0.30
		}
		for j := range m.Bases {
			route := plan.Routes[i*len(m.Bases)+j]
			if !route.Used {
				continue
			}
			c.arrow(style,
				warehouseX+nodeW/2, warehouseYs[i]+offset,
				baseX-nodeW/2, baseYs[j]+offset,
				route)
		}
	}

	for i, w := range m.Warehouses {
		c.node(faces.label, faces.info, warehouseX, warehouseYs[i], w.Name, fmt.Sprintf("Stock: %g t", w.Amount))
	}
	for j, b := range m.Bases {
		c.node(faces.label, faces.info, baseX, baseYs[j], "Base "+b.Name, fmt.Sprintf("Needs: %g t", b.Amount))
	}

	// route labels on top of the arrows
	for i := range m.Warehouses {
		offset := -0.30
		labelT := 0.42
		if i%2 == 1 {
			offset = 0.30
			labelT = 0.62
		}
		for j := range m.Bases {
			route := plan.Routes[i*len(m.Bases)+j]
			if !route.Used {
				continue
			}
			x0, y0 := warehouseX+nodeW/2, warehouseYs[i]+offset
			x1, y1 := baseX-nodeW/2, baseYs[j]+offset
			c.routeLabel(faces.small,
				x0+(x1-x0)*labelT, y0+(y1-y0)*labelT,
				route)
		}
	}

	c.legend(faces.info)

	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing flow diagram: %w", err)
	}
	return nil
}

// spread places n nodes evenly between the top and bottom layout rows.
func spread(n int, top, bottom float64) []float64 {
	ys := make([]float64, n)
	if n == 1 {
		ys[0] = (top + bottom) / 2
		return ys
	}
	for k := range ys {
		ys[k] = top - float64(k)*(top-bottom)/float64(n-1)
	}
	return ys
}

func (c flowCanvas) node(labelFace, infoFace font.Face, x, y float64, label, info string) {
	c.dc.DrawRoundedRectangle(
		c.x(x-nodeW/2), c.y(y+nodeH/2),
		nodeW*c.scale, nodeH*c.scale,
		0.15*c.scale)
	c.dc.SetHexColor(nodeFillHex)
	c.dc.FillPreserve()
	c.dc.SetHexColor(outlineHex)
	c.dc.SetLineWidth(0.02 * c.scale)
	c.dc.Stroke()

	c.dc.SetFontFace(labelFace)
	c.dc.DrawStringAnchored(label, c.x(x), c.y(y+0.3), 0.5, 0.5)
	c.dc.SetFontFace(infoFace)
	c.dc.DrawStringAnchored(info, c.x(x), c.y(y-0.3), 0.5, 0.5)
}

func (c flowCanvas) arrow(style Style, x0, y0, x1, y1 float64, route transport.Route) {
	if route.UnitCost <= cheapCutoff {
		c.dc.SetHexColor(cheapHex + "E6")
	} else {
		c.dc.SetHexColor(expensiveHex + "E6")
	}

	width := math.Max(2, route.Quantity/25)
	c.dc.SetLineWidth(style.pxPerPt(width))

	px0, py0 := c.x(x0), c.y(y0)
	px1, py1 := c.x(x1), c.y(y1)
	angle := math.Atan2(py1-py0, px1-px0)

	const headLen = 0.35
	hx := px1 - headLen*c.scale*math.Cos(angle)
	hy := py1 - headLen*c.scale*math.Sin(angle)

	c.dc.DrawLine(px0, py0, hx, hy)
	c.dc.Stroke()

	const headHalf = 0.18
	c.dc.MoveTo(px1, py1)
	c.dc.LineTo(hx-headHalf*c.scale*math.Sin(angle), hy+headHalf*c.scale*math.Cos(angle))
	c.dc.LineTo(hx+headHalf*c.scale*math.Sin(angle), hy-headHalf*c.scale*math.Cos(angle))
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c flowCanvas) routeLabel(face font.Face, x, y float64, route transport.Route) {
	line1 := fmt.Sprintf("%.0f t", route.Quantity)
	line2 := fmt.Sprintf("(%gx%.0f=%.0f)", route.UnitCost, route.Quantity, route.Cost)

	c.dc.SetFontFace(face)
	w1, h := c.dc.MeasureString(line1)
	w2, _ := c.dc.MeasureString(line2)
	w := math.Max(w1, w2)

	pad := 0.12 * c.scale
	px, py := c.x(x), c.y(y)
	boxW := w + 2*pad
	boxH := 2*h + 2*pad

	c.dc.DrawRoundedRectangle(px-boxW/2, py-boxH/2, boxW, boxH, pad)
	c.dc.SetRGB(1, 1, 1)
	c.dc.FillPreserve()
	c.dc.SetHexColor(outlineHex)
	c.dc.SetLineWidth(0.015 * c.scale)
	c.dc.Stroke()

	c.dc.DrawStringAnchored(line1, px, py-h/2, 0.5, 0.5)
	c.dc.DrawStringAnchored(line2, px, py+h/2, 0.5, 0.5)
}

func (c flowCanvas) legend(face font.Face) {
	entries := []struct {
		colorHex string
		text     string
	}{
		{nodeFillHex, "Warehouses / Bases"},
		{cheapHex, fmt.Sprintf("Cheap route (<= %d per t)", cheapCutoff)},
		{expensiveHex, fmt.Sprintf("Expensive route (>= %d per t)", cheapCutoff+1)},
	}

	c.dc.SetFontFace(face)
	x := 10.6
	y := 12.65
	for _, e := range entries {
		c.dc.DrawRectangle(c.x(x), c.y(y)-0.25*c.scale, 0.5*c.scale, 0.35*c.scale)
		c.dc.SetHexColor(e.colorHex)
		c.dc.FillPreserve()
		c.dc.SetHexColor(outlineHex)
		c.dc.SetLineWidth(0.015 * c.scale)
		c.dc.Stroke()
		c.dc.DrawStringAnchored(e.text, c.x(x+0.7), c.y(y), 0, 0.5)
		y -= 0.55
	}
}
