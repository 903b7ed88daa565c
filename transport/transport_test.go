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

package transport

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

func TestBalance(t *testing.T) {
	m := NewModel()

	assert.Equal(t, 400.0, m.TotalSupply())
	assert.Equal(t, 400.0, m.TotalDemand())
	assert.True(t, m.Balanced())
}

func TestProblem(t *testing.T) {
	p := NewModel().Problem()

	assert.Equal(t, []float64{8, 6, 10, 9, 7, 5}, p.C)
	require.Len(t, p.AEq, 5)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0}, p.AEq[0])
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 1}, p.AEq[1])
	assert.Equal(t, []float64{1, 0, 0, 1, 0, 0}, p.AEq[2])
	assert.Equal(t, []float64{0, 1, 0, 0, 1, 0}, p.AEq[3])
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 1}, p.AEq[4])
	assert.Equal(t, []float64{150, 250, 120, 180, 100}, p.BEq)

	require.NoError(t, p.Validate())
}

func TestOptimize(t *testing.T) {
	m := NewModel()
	plan, err := m.Optimize()
	require.NoError(t, err)

	// the optimum is degenerate (several vertices share the optimal
	// cost), so only the objective value is pinned
	assert.InDelta(t, 2690.0, plan.TotalCost, delta)

	// every warehouse fully emptied
	for i, w := range m.Warehouses {
		var sum float64
		for j := range m.Bases {
			sum += plan.Quantities[i][j]
		}
		assert.InDelta(t, w.Amount, sum, delta)
	}

	// every demand exactly met
	for j, b := range m.Bases {
		var sum float64
		for i := range m.Warehouses {
			sum += plan.Quantities[i][j]
		}
		assert.InDelta(t, b.Amount, sum, delta)
	}
}

func TestCostRecomputation(t *testing.T) {
	m := NewModel()
	plan, err := m.Optimize()
	require.NoError(t, err)

	var recomputed float64
	for _, r := range plan.Routes {
		recomputed += r.UnitCost * r.Quantity
		assert.InDelta(t, r.UnitCost*r.Quantity, r.Cost, delta)
	}
	assert.InDelta(t, plan.TotalCost, recomputed, delta)
}

func TestRouteClassification(t *testing.T) {
	plan, err := NewModel().Optimize()
	require.NoError(t, err)

	for _, r := range plan.Routes {
		assert.Equal(t, lp.Used(r.Quantity, lp.DefaultTol), r.Used,
			"route %s -> %s with quantity %v", r.From, r.To, r.Quantity)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	m := NewModel()

	first, err := m.Optimize()
	require.NoError(t, err)
	second, err := m.Optimize()
	require.NoError(t, err)

	assert.Equal(t, first.Quantities, second.Quantities)
	assert.Equal(t, first.TotalCost, second.TotalCost)
}

func TestOptimizeUnbalanced(t *testing.T) {
	m := NewModel()
	m.Warehouses[1].Amount = 200 // supply 350 < demand 400

	plan, err := m.Optimize()
	assert.ErrorIs(t, err, ErrUnbalanced)
	assert.Nil(t, plan)
}

func TestUnbalancedSystemIsInfeasible(t *testing.T) {
	m := NewModel()
	m.Warehouses[1].Amount = 200

	// bypass the balance precondition and hand the equality system to
	// the solver directly: it must report infeasibility
	res, err := lp.Solve(m.Problem())
	assert.ErrorIs(t, err, lp.ErrModelInfeasible)
	assert.Nil(t, res)
}

func TestWriteReport(t *testing.T) {
	plan, err := NewModel().Optimize()
	require.NoError(t, err)

	var buf bytes.Buffer
	plan.WriteReport(&buf)

	report := buf.String()
	assert.Contains(t, report, "Balance: 400 = 400")
	assert.Contains(t, report, "minimum total cost: 2690.00")
	assert.Contains(t, report, "Used routes:")
	assert.Contains(t, report, "Unused routes:")
}
