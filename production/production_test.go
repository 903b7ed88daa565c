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

package production

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfab/opsplan/lp"
)

const (
	delta = 0.0000001 // acceptable numerical deviation for test results
)

func TestProblem(t *testing.T) {
	p := NewModel().Problem()

	assert.Equal(t, []float64{-8000, -12000}, p.C)
	// the redundant memory row must not reach the solver
	require.Len(t, p.AUb, 2)
	assert.Equal(t, []float64{2, 3}, p.AUb[0])
	assert.Equal(t, []float64{1, 2}, p.AUb[1])
	assert.Equal(t, []float64{240, 150}, p.BUb)
	assert.Equal(t, []float64{0, 0}, p.Lower)

	require.NoError(t, p.Validate())
}

func TestOptimize(t *testing.T) {
	plan, err := NewModel().Optimize()
	require.NoError(t, err)

	assert.InDelta(t, 30.0, plan.Units[0], delta)
	assert.InDelta(t, 60.0, plan.Units[1], delta)
	assert.InDelta(t, 960000.0, plan.Profit, delta)
}

func TestResourceUsage(t *testing.T) {
	plan, err := NewModel().Optimize()
	require.NoError(t, err)

	require.Len(t, plan.Usages, 3)
	for _, u := range plan.Usages {
		switch u.Resource.Name {
		case "CPU time":
			assert.InDelta(t, 240.0, u.Used, delta)
			assert.True(t, u.Binding)
		case "batteries":
			assert.InDelta(t, 150.0, u.Used, delta)
			assert.True(t, u.Binding)
		case "memory":
			// redundant row, not solved, but must stay consistent
			assert.LessOrEqual(t, u.Used, u.Resource.Capacity+delta)
		default:
			t.Fatalf("unexpected resource %q", u.Resource.Name)
		}
	}

	assert.Contains(t, plan.Scarce(), "CPU time")
	assert.Contains(t, plan.Scarce(), "batteries")
}

func TestOptimizeDeterministic(t *testing.T) {
	m := NewModel()

	first, err := m.Optimize()
	require.NoError(t, err)
	second, err := m.Optimize()
	require.NoError(t, err)

	assert.Equal(t, first.Units, second.Units)
	assert.Equal(t, first.Profit, second.Profit)
}

func TestWriteReport(t *testing.T) {
	plan, err := NewModel().Optimize()
	require.NoError(t, err)

	var buf bytes.Buffer
	plan.WriteReport(&buf)

	report := buf.String()
	assert.Contains(t, report, "maximum profit: 960000.00")
	assert.Contains(t, report, "x1 (smartphones) = 30.00 units")
	assert.Contains(t, report, "x2 (tablets) = 60.00 units")
	assert.Contains(t, report, "(fully used)")
	assert.Contains(t, report, "redundant")
}

func TestOptimizeInfeasible(t *testing.T) {
	m := NewModel()
	// a negative capacity cannot be met with non-negative production
	m.Resources[0].Capacity = -1

	plan, err := m.Optimize()
	assert.ErrorIs(t, err, lp.ErrModelInfeasible)
	assert.Nil(t, plan)
}
