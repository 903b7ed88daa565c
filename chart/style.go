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

// Package chart renders the solved plans as PNG images: the
// production mix as a feasible-region chart and the transportation
// plan as a flow-network diagram. Styling is an explicit value passed
// into each renderer; the package keeps no process-wide state.
package chart

import "image/color"

// Style configures a single chart. Width and Height are in inches,
// DPI converts them to pixels for the raster renderer, FontSize is the
// base text size in points.
type Style struct {
	Width    float64
	Height   float64
	DPI      int
	FontSize float64
}

// DefaultStyle matches the report figures: 10x8 inches, 11 pt text.
func DefaultStyle() Style {
	return Style{
		Width:    10,
		Height:   8,
		DPI:      100,
		FontSize: 11,
	}
}

// pxPerPt converts a point size to pixels at the style's resolution.
func (s Style) pxPerPt(pt float64) float64 {
	return pt * float64(s.DPI) / 72
}

// shared palette
var (
	paletteBlue = color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	paletteGray = color.RGBA{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF}
	regionFill  = color.NRGBA{R: 0xAE, G: 0xC7, B: 0xE8, A: 0x59}
	isoGray     = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x80}
	optimumRed  = color.RGBA{R: 0xD6, G: 0x20, B: 0x28, A: 0xFF}
)

const (
	nodeFillHex  = "#E0F2F7"
	outlineHex   = "#333333"
	cheapHex     = "#007ACC"
	expensiveHex = "#E4572E"
)
