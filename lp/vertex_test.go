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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVertices(t *testing.T, expected, got [][2]float64) {
	t.Helper()

	require.Len(t, got, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i][0], got[i][0], delta)
		assert.InDelta(t, expected[i][1], got[i][1], delta)
	}
}

func TestVertices(t *testing.T) {
	verts, err := Vertices(
		[][]float64{{2, 3}, {1, 2}},
		[]float64{240, 150},
	)
	require.NoError(t, err)

	assertVertices(t, [][2]float64{{0, 0}, {120, 0}, {30, 60}, {0, 75}}, verts)
}

func TestVerticesRedundantRow(t *testing.T) {
	// the third row is the first one scaled by 2; its boundary is
	// coincident, so it must not contribute extra vertices
	verts, err := Vertices(
		[][]float64{{2, 3}, {1, 2}, {4, 6}},
		[]float64{240, 150, 480},
	)
	require.NoError(t, err)

	assertVertices(t, [][2]float64{{0, 0}, {120, 0}, {30, 60}, {0, 75}}, verts)
}

func TestVerticesTriangle(t *testing.T) {
	verts, err := Vertices([][]float64{{1, 1}}, []float64{10})
	require.NoError(t, err)

	assertVertices(t, [][2]float64{{0, 0}, {10, 0}, {0, 10}}, verts)
}

func TestVerticesEmptyRegion(t *testing.T) {
	// x + y <= -1 is incompatible with the non-negativity rows
	verts, err := Vertices([][]float64{{1, 1}}, []float64{-1})
	require.NoError(t, err)

	assert.Empty(t, verts)
}

func TestVerticesBadInput(t *testing.T) {
	_, err := Vertices([][]float64{{1, 2, 3}}, []float64{1})
	assert.Error(t, err)

	_, err = Vertices([][]float64{{1, 2}}, []float64{1, 2})
	assert.Error(t, err)
}
