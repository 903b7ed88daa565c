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

package lp

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Vertices enumerates the extreme points of the two-variable region
// {x in R²: AUb·x <= BUb, x >= 0}. Every pair of constraint boundaries
// (the axes count as the boundaries of the non-negativity constraints)
// is intersected by solving the corresponding 2x2 system; intersections
// of parallel boundaries are skipped, infeasible intersections are
// discarded, and the surviving points are returned deduplicated in
// counter-clockwise order, ready to be drawn as a convex polygon.
func Vertices(aUb [][]float64, bUb []float64) ([][2]float64, error) {
	if len(aUb) != len(bUb) {
		return nil, fmt.Errorf("inconsistent number of rows and right-hand sides: %d != %d", len(aUb), len(bUb))
	}

	// rows of [a1, a2, b] meaning a1*x + a2*y <= b
	rows := make([][3]float64, 0, len(aUb)+2)
	for i, row := range aUb {
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d has %d coefficients, vertex enumeration needs exactly 2", i, len(row))
		}
		rows = append(rows, [3]float64{row[0], row[1], bUb[i]})
	}
	rows = append(rows, [3]float64{-1, 0, 0}, [3]float64{0, -1, 0})

	var pts [][2]float64
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			a := mat.NewDense(2, 2, []float64{
				rows[i][0], rows[i][1],
				rows[j][0], rows[j][1],
			})
			rhs := mat.NewVecDense(2, []float64{rows[i][2], rows[j][2]})

			var v mat.VecDense
			if err := v.SolveVec(a, rhs); err != nil {
				// parallel (or coincident) boundaries
				continue
			}

			x, y := v.AtVec(0), v.AtVec(1)
			if !feasible(rows, x, y) {
				continue
			}
			if !contains(pts, x, y) {
				pts = append(pts, [2]float64{x, y})
			}
		}
	}

	sortCCW(pts)

	return pts, nil
}

func feasible(rows [][3]float64, x, y float64) bool {
	for _, r := range rows {
		if r[0]*x+r[1]*y > r[2]+DefaultTol {
			return false
		}
	}
	return true
}

func contains(pts [][2]float64, x, y float64) bool {
	for _, p := range pts {
		if math.Abs(p[0]-x) <= DefaultTol && math.Abs(p[1]-y) <= DefaultTol {
			return true
		}
	}
	return false
}

func sortCCW(pts [][2]float64) {
	if len(pts) < 3 {
		return
	}

	var cx, cy float64
	for _, p := range pts {
		cx += p[0]
		cy += p[1]
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	sort.Slice(pts, func(i, j int) bool {
		return math.Atan2(pts[i][1]-cy, pts[i][0]-cx) < math.Atan2(pts[j][1]-cy, pts[j][0]-cx)
	})
}
