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

// Package transport models the balanced transportation problem:
// ship supplies from warehouses to bases so that every demand is met,
// every warehouse is emptied and the total shipping cost is minimal.
package transport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/planfab/opsplan/lp"
)

// ErrUnbalanced is returned by Optimize when total supply does not
// equal total demand. A balanced instance is a precondition of the
// equality-constrained formulation; an unbalanced one is necessarily
// infeasible, so it is rejected before reaching the solver.
var ErrUnbalanced = errors.New("total supply does not equal total demand")

/* Types */

// Node is a warehouse (Amount = supply) or a base (Amount = demand).
type Node struct {
	Name   string
	Amount float64
}

// Model carries the fixed problem instance. Costs[i][j] is the
// per-tonne cost of shipping from warehouse i to base j.
type Model struct {
	Warehouses []Node
	Bases      []Node
	Costs      [][]float64
}

// Route is one warehouse-to-base lane in the optimal plan. Used means
// the shipped quantity is above tolerance.
type Route struct {
	From     string
	To       string
	Quantity float64
	UnitCost float64
	Cost     float64
	Used     bool
}

// Plan is the optimal shipment schedule.
type Plan struct {
	Model      Model
	Quantities [][]float64
	TotalCost  float64
	Routes     []Route
}

/* Model */

// NewModel returns the fixed instance: two warehouses supplying three
// bases, 400 t on each side of the balance.
func NewModel() Model {
	return Model{
		Warehouses: []Node{
			{Name: "Warehouse 1", Amount: 150},
			{Name: "Warehouse 2", Amount: 250},
		},
		Bases: []Node{
			{Name: "Alpha", Amount: 120},
			{Name: "Beta", Amount: 180},
			{Name: "Gamma", Amount: 100},
		},
		Costs: [][]float64{
			{8, 6, 10},
			{9, 7, 5},
		},
	}
}

// TotalSupply sums the warehouse stocks.
func (m Model) TotalSupply() float64 {
	var total float64
	for _, w := range m.Warehouses {
		total += w.Amount
	}
	return total
}

// TotalDemand sums the base requirements.
func (m Model) TotalDemand() float64 {
	var total float64
	for _, b := range m.Bases {
		total += b.Amount
	}
	return total
}

// Balanced reports whether total supply equals total demand within
// floating tolerance.
func (m Model) Balanced() bool {
	return lp.Binding(m.TotalSupply(), m.TotalDemand(), lp.DefaultTol)
}

// Problem casts the instance into canonical form. The shipment
// variables are flattened row-major (x[i*nb+j] ships from warehouse i
// to base j); each warehouse contributes one equality row over its
// outgoing lanes and each base one over its incoming lanes. As usual
// for a balanced instance one of the rows is linearly dependent on the
// others, which the simplex handles without special treatment.
func (m Model) Problem() lp.Problem {
	nw, nb := len(m.Warehouses), len(m.Bases)
	n := nw * nb

	costs := make([]float64, n)
	for i := range m.Warehouses {
		for j := range m.Bases {
			costs[i*nb+j] = m.Costs[i][j]
		}
	}

	p := lp.Problem{
		C:     costs,
		Lower: make([]float64, n),
		Upper: infSlice(n),
	}

	for i, w := range m.Warehouses {
		row := make([]float64, n)
		for j := range m.Bases {
			row[i*nb+j] = 1
		}
		p.AddEqRow(row, w.Amount)
	}
	for j, b := range m.Bases {
		row := make([]float64, n)
		for i := range m.Warehouses {
			row[i*nb+j] = 1
		}
		p.AddEqRow(row, b.Amount)
	}

	return p
}

// Optimize solves the instance. The balance precondition is checked
// first; an unbalanced model yields ErrUnbalanced without invoking the
// solver. On success the flat solution vector is folded back into a
// shipment matrix and every lane is classified as used or unused.
func (m Model) Optimize(opts ...lp.Option) (*Plan, error) {
	if !m.Balanced() {
		return nil, fmt.Errorf("transportation plan: %w (supply %g, demand %g)",
			ErrUnbalanced, m.TotalSupply(), m.TotalDemand())
	}

	res, err := lp.Solve(m.Problem(), opts...)
	if err != nil {
		return nil, fmt.Errorf("transportation plan: %w", err)
	}

	nb := len(m.Bases)
	plan := &Plan{
		Model:     m,
		TotalCost: res.Objective,
	}
	for i, w := range m.Warehouses {
		qty := make([]float64, nb)
		for j, b := range m.Bases {
			q := res.X[i*nb+j]
			qty[j] = q
			plan.Routes = append(plan.Routes, Route{
				From:     w.Name,
				To:       b.Name,
				Quantity: q,
				UnitCost: m.Costs[i][j],
				Cost:     m.Costs[i][j] * q,
				Used:     lp.Used(q, lp.DefaultTol),
			})
		}
		plan.Quantities = append(plan.Quantities, qty)
	}

	return plan, nil
}

func infSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Inf(1)
	}
	return s
}

/* Reporting */

// WriteReport prints the inputs, the balance check, the mathematical
// model, the optimal schedule and the route analysis.
func (p *Plan) WriteReport(w io.Writer) {
	m := p.Model

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(w, "Task 2: base supply optimization (transportation problem)")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))

	fmt.Fprintln(w, "\nWarehouses:")
	for _, wh := range m.Warehouses {
		fmt.Fprintf(w, "  %-12s %g t\n", wh.Name+":", wh.Amount)
	}
	fmt.Fprintf(w, "  %-12s %g t\n", "total:", m.TotalSupply())

	fmt.Fprintln(w, "\nBases:")
	for _, b := range m.Bases {
		fmt.Fprintf(w, "  %-12s %g t\n", "Base "+b.Name+":", b.Amount)
	}
	fmt.Fprintf(w, "  %-12s %g t\n", "total:", m.TotalDemand())

	fmt.Fprintln(w, "\nShipping cost per tonne:")
	fmt.Fprint(w, "              ")
	for _, b := range m.Bases {
		fmt.Fprintf(w, "%8s", b.Name)
	}
	fmt.Fprintln(w)
	for i, wh := range m.Warehouses {
		fmt.Fprintf(w, "  %-12s", wh.Name+":")
		for j := range m.Bases {
			fmt.Fprintf(w, "%8g", m.Costs[i][j])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nBalance: %g = %g -> the problem is balanced\n", m.TotalSupply(), m.TotalDemand())

	fmt.Fprintln(w, "\nMathematical model:")
	fmt.Fprintln(w, "  variables: x_ij - tonnes shipped from warehouse i to base j")
	fmt.Fprintln(w, "  objective: Z = sum of cost_ij * x_ij -> min")
	fmt.Fprintln(w, "  warehouse constraints: outgoing shipments equal the stock")
	fmt.Fprintln(w, "  base constraints: incoming shipments equal the demand")
	fmt.Fprintln(w, "  x_ij >= 0")

	fmt.Fprintln(w, "\nOptimal shipment plan:")
	for i, wh := range m.Warehouses {
		fmt.Fprintf(w, "  from %s:\n", wh.Name)
		for j, b := range m.Bases {
			q := p.Quantities[i][j]
			fmt.Fprintf(w, "    -> %-6s %6.2f t  (cost: %8.2f)\n", b.Name+":", q, m.Costs[i][j]*q)
		}
	}
	fmt.Fprintf(w, "\n  minimum total cost: %.2f\n", p.TotalCost)

	fmt.Fprintln(w, "\nConstraint check:")
	for i, wh := range m.Warehouses {
		var sum float64
		for j := range m.Bases {
			sum += p.Quantities[i][j]
		}
		fmt.Fprintf(w, "  %-12s %6.2f = %g\n", wh.Name+":", sum, wh.Amount)
	}
	for j, b := range m.Bases {
		var sum float64
		for i := range m.Warehouses {
			sum += p.Quantities[i][j]
		}
		fmt.Fprintf(w, "  %-12s %6.2f = %g\n", b.Name+":", sum, b.Amount)
	}

	fmt.Fprintln(w, "\nUsed routes:")
	for _, r := range p.Routes {
		if r.Used {
			fmt.Fprintf(w, "  %-24s %6.2f t x %2g = %8.2f\n", r.From+" -> "+r.To+":", r.Quantity, r.UnitCost, r.Cost)
		}
	}
	fmt.Fprintln(w, "\nUnused routes:")
	for _, r := range p.Routes {
		if !r.Used {
			fmt.Fprintf(w, "  %-24s %6.2f t (unit cost %g - not worth it)\n", r.From+" -> "+r.To+":", r.Quantity, r.UnitCost)
		}
	}
}
