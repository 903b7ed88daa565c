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

// Package production models the electronics production-mix problem:
// choose how many units of each product to build so that total profit
// is maximal while every shared resource stays within its capacity.
package production

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/planfab/opsplan/lp"
)

/* Types */

// Product is one product line with its per-unit profit.
type Product struct {
	Name   string
	Profit float64
}

// Resource is a shared capacity with the per-unit consumption of each
// product. A Redundant resource is dominated by another one (its row
// is a scaled copy) and is excluded from the solved system; its usage
// is still computed and verified against the capacity.
type Resource struct {
	Name      string
	Unit      string
	Capacity  float64
	PerUnit   []float64
	Redundant bool
}

// Model carries the fixed problem instance.
type Model struct {
	Products  []Product
	Resources []Resource
}

// Usage is the amount of one resource consumed by a plan, classified
// as binding when consumption reaches the capacity within tolerance.
type Usage struct {
	Resource Resource
	Used     float64
	Binding  bool
}

// Plan is the optimal production mix.
type Plan struct {
	Model  Model
	Units  []float64
	Profit float64
	Usages []Usage
}

/* Model */

// NewModel returns the fixed instance: smartphones and tablets
// competing for CPU assembly time, memory chips and batteries. The
// memory row equals the CPU row scaled by two, so it cannot cut the
// feasible region any further and is flagged redundant.
func NewModel() Model {
	return Model{
		Products: []Product{
			{Name: "smartphones", Profit: 8000},
			{Name: "tablets", Profit: 12000},
		},
		Resources: []Resource{
			{Name: "CPU time", Unit: "h", Capacity: 240, PerUnit: []float64{2, 3}},
			{Name: "memory", Unit: "GB", Capacity: 480, PerUnit: []float64{4, 6}, Redundant: true},
			{Name: "batteries", Unit: "pcs", Capacity: 150, PerUnit: []float64{1, 2}},
		},
	}
}

// Problem casts the instance into canonical form: the profit vector is
// negated so the maximization runs on the minimization-native solver,
// redundant resource rows are left out, and every quantity is bounded
// below by zero.
func (m Model) Problem() lp.Problem {
	profits := make([]float64, len(m.Products))
	for i, prod := range m.Products {
		profits[i] = prod.Profit
	}

	p := lp.Problem{
		C:     lp.Maximize(profits),
		Lower: make([]float64, len(m.Products)),
		Upper: infSlice(len(m.Products)),
	}
	for _, r := range m.Resources {
		if r.Redundant {
			continue
		}
		p.AddLeRow(r.PerUnit, r.Capacity)
	}

	return p
}

// Optimize solves the instance. On success it returns the optimal
// plan with the maximum profit recovered from the negated objective
// and every resource (redundant ones included) classified as binding
// or slack at the optimum. A solver failure is terminal: the error
// carries the solver's diagnostic and no plan is produced.
func (m Model) Optimize(opts ...lp.Option) (*Plan, error) {
	res, err := lp.Solve(m.Problem(), opts...)
	if err != nil {
		return nil, fmt.Errorf("production mix: %w", err)
	}

	plan := &Plan{
		Model:  m,
		Units:  res.X,
		Profit: -res.Objective,
	}
	for _, r := range m.Resources {
		used := lp.Objective(r.PerUnit, res.X)
		plan.Usages = append(plan.Usages, Usage{
			Resource: r,
			Used:     used,
			Binding:  lp.Binding(used, r.Capacity, lp.DefaultTol),
		})
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

// Scarce returns the names of the binding resources, the ones whose
// full capacity is consumed at the optimum.
func (p *Plan) Scarce() []string {
	var names []string
	for _, u := range p.Usages {
		if u.Binding {
			names = append(names, u.Resource.Name)
		}
	}
	return names
}

// WriteReport prints the inputs, the mathematical model, the optimal
// mix and the resource analysis in a human-readable form.
func (p *Plan) WriteReport(w io.Writer) {
	m := p.Model

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(w, "Task 1: electronics production mix")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))

	fmt.Fprintln(w, "\nInput data:")
	for i, prod := range m.Products {
		fmt.Fprintf(w, "  %-12s profit %.0f per unit, needs", prod.Name+":", prod.Profit)
		for j, r := range m.Resources {
			if j > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, " %g %s %s", r.PerUnit[i], r.Unit, r.Name)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "  available:  ")
	for j, r := range m.Resources {
		if j > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%g %s %s", r.Capacity, r.Unit, r.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nMathematical model:")
	fmt.Fprintf(w, "  variables: x1 - %s, x2 - %s\n", m.Products[0].Name, m.Products[1].Name)
	fmt.Fprintf(w, "  objective: P = %g*x1 + %g*x2 -> max\n", m.Products[0].Profit, m.Products[1].Profit)
	fmt.Fprintln(w, "  subject to:")
	for _, r := range m.Resources {
		note := ""
		if r.Redundant {
			note = "  (redundant, scaled copy of another row - not solved)"
		}
		fmt.Fprintf(w, "    %g*x1 + %g*x2 <= %g%s\n", r.PerUnit[0], r.PerUnit[1], r.Capacity, note)
	}
	fmt.Fprintln(w, "    x1, x2 >= 0")

	fmt.Fprintln(w, "\nSolution found:")
	for i, prod := range m.Products {
		fmt.Fprintf(w, "  x%d (%s) = %.2f units\n", i+1, prod.Name, p.Units[i])
	}
	fmt.Fprintf(w, "  maximum profit: %.2f\n", p.Profit)

	fmt.Fprintln(w, "\nResource usage:")
	for _, u := range p.Usages {
		fmt.Fprintf(w, "  %-12s %8.2f / %g %s ", u.Resource.Name+":", u.Used, u.Resource.Capacity, u.Resource.Unit)
		if u.Binding {
			fmt.Fprintln(w, "(fully used)")
		} else {
			fmt.Fprintf(w, "(slack %.2f)\n", u.Resource.Capacity-u.Used)
		}
	}

	fmt.Fprintln(w, "\nAnalysis:")
	fmt.Fprintf(w, "  build %.0f %s and %.0f %s\n", p.Units[0], m.Products[0].Name, p.Units[1], m.Products[1].Name)
	scarce := p.Scarce()
	if len(scarce) == 0 {
		fmt.Fprintln(w, "  scarce resources: none")
	} else {
		fmt.Fprintf(w, "  scarce resources: %s\n", strings.Join(scarce, ", "))
	}
}
