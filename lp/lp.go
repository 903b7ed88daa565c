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

/*
Package lp holds linear programs in canonical form and solves them.

A program is expressed in the solver's native minimization sense:

	Minimize:
	  C·x
	Subject to:
	  AUb·x <= BUb
	  AEq·x == BEq
	  Lower <= x <= Upper

A maximization is cast into this form by negating its objective with
Maximize and negating the optimal value back afterwards:

	p := lp.Problem{C: lp.Maximize([]float64{8000, 12000})}
	p.AddLeRow([]float64{2, 3}, 240)
	p.AddLeRow([]float64{1, 2}, 150)

	res, err := lp.Solve(p) // you should check for errors

	fmt.Printf("x = %v\n", res.X)
	fmt.Printf("max = %f\n", -res.Objective)

The backing solver is the simplex implementation of
github.com/willauld/lpsimplex; failures are reported as typed
SolveError values wrapped with the solver's diagnostic message.
*/
package lp

import (
	"fmt"
	"math"

	"github.com/willauld/lpsimplex"
	"gonum.org/v1/gonum/floats"
)

// DefaultTol is the absolute tolerance used to classify constraints as
// binding and quantities as used.
const DefaultTol = 1e-6

/* Types */

// Problem is a linear program in canonical (minimization) form.
// Either constraint system may be empty. Nil bounds default to
// [0, +inf) for every variable, matching the physical-quantity domain
// this package serves.
type Problem struct {
	C   []float64
	AUb [][]float64
	BUb []float64
	AEq [][]float64
	BEq []float64

	Lower []float64
	Upper []float64
}

// Result holds the outcome of a successful solve. It is produced once
// per Solve call and never mutated afterwards.
type Result struct {
	X          []float64
	Objective  float64
	Iterations int
}

type solveConfig struct {
	logger  Logger
	tol     float64
	maxIter int
	bland   bool
}

// Option configures a single Solve call.
type Option func(*solveConfig) error

/* Problem construction */

// AddLeRow appends the inequality sum(coeffs · x) <= rhs.
func (p *Problem) AddLeRow(coeffs []float64, rhs float64) {
	p.AUb = append(p.AUb, coeffs)
	p.BUb = append(p.BUb, rhs)
}

// AddEqRow appends the equality sum(coeffs · x) == rhs.
func (p *Problem) AddEqRow(coeffs []float64, rhs float64) {
	p.AEq = append(p.AEq, coeffs)
	p.BEq = append(p.BEq, rhs)
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int {
	return len(p.C)
}

// Validate checks the structural invariants of the program: every
// constraint row must have exactly NumVars coefficients, each system's
// right-hand side must match its row count, and bounds, when present,
// must cover every variable with non-negative lower bounds.
func (p *Problem) Validate() error {
	n := p.NumVars()
	if n == 0 {
		return fmt.Errorf("program has no variables")
	}

	if len(p.AUb) != len(p.BUb) {
		return fmt.Errorf("inconsistent number of inequality rows and right-hand sides: %d != %d", len(p.AUb), len(p.BUb))
	}
	if len(p.AEq) != len(p.BEq) {
		return fmt.Errorf("inconsistent number of equality rows and right-hand sides: %d != %d", len(p.AEq), len(p.BEq))
	}

	for i, row := range p.AUb {
		if len(row) != n {
			return fmt.Errorf("inequality row %d has %d coefficients, want %d", i, len(row), n)
		}
	}
	for i, row := range p.AEq {
		if len(row) != n {
			return fmt.Errorf("equality row %d has %d coefficients, want %d", i, len(row), n)
		}
	}

	if p.Lower != nil && len(p.Lower) != n {
		return fmt.Errorf("got %d lower bounds for %d variables", len(p.Lower), n)
	}
	if p.Upper != nil && len(p.Upper) != n {
		return fmt.Errorf("got %d upper bounds for %d variables", len(p.Upper), n)
	}
	for i, lo := range p.Lower {
		if lo < 0 {
			return fmt.Errorf("variable %d has negative lower bound %v", i, lo)
		}
	}

	return nil
}

func (p *Problem) bounds() []lpsimplex.Bound {
	if p.Lower == nil && p.Upper == nil {
		// solver default: [0, +inf) per variable
		return nil
	}

	bounds := make([]lpsimplex.Bound, p.NumVars())
	for i := range bounds {
		lo, hi := 0.0, math.Inf(1)
		if p.Lower != nil {
			lo = p.Lower[i]
		}
		if p.Upper != nil {
			hi = p.Upper[i]
		}
		bounds[i] = lpsimplex.Bound{Lb: lo, Ub: hi}
	}
	return bounds
}

/* Options */

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		logger:  noopLogger{},
		tol:     1e-12,
		maxIter: 4000,
	}
}

// WithLogger redirects the solver's progress messages to the given
// logger. The default discards them.
func WithLogger(logger Logger) Option {
	return func(cfg *solveConfig) error {
		cfg.logger = logger

		return nil
	}
}

// WithTolerance overrides the solver's pivot tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *solveConfig) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		cfg.tol = tol

		return nil
	}
}

// WithMaxIterations overrides the simplex iteration limit.
func WithMaxIterations(n int) Option {
	return func(cfg *solveConfig) error {
		if n < 1 {
			return fmt.Errorf("iteration limit must be at least 1, got %d", n)
		}
		cfg.maxIter = n

		return nil
	}
}

// WithBlandRule enables Bland's anti-cycling pivot rule.
func WithBlandRule() Option {
	return func(cfg *solveConfig) error {
		cfg.bland = true

		return nil
	}
}

/* Solving */

// Solve attempts to find an optimal solution to the program. On
// failure the returned error wraps one of the SolveError values
// together with the solver's diagnostic message.
func Solve(p Problem, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid program: %w", err)
	}

	cfg := defaultSolveConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying solve option: %w", err)
		}
	}

	cfg.logger.Print(fmt.Sprintf("solving program with %d variables, %d inequality rows, %d equality rows",
		p.NumVars(), len(p.AUb), len(p.AEq)))

	res := lpsimplex.LPSimplex(p.C, p.AUb, p.BUb, p.AEq, p.BEq, p.bounds(),
		lpsimplex.Callbackfunc(nil), false, cfg.maxIter, cfg.tol, cfg.bland)

	if !res.Success {
		return nil, fmt.Errorf("%s: %w", res.Message, statusError(res.Status))
	}

	cfg.logger.Print(fmt.Sprintf("optimum %v found after %d iterations", res.Fun, res.Nitr))

	return &Result{
		X:          res.X,
		Objective:  res.Fun,
		Iterations: res.Nitr,
	}, nil
}

/* Helpers shared by the model packages */

// Maximize returns the negated objective vector, casting a
// maximization into the solver's native minimization sense.
func Maximize(c []float64) []float64 {
	neg := make([]float64, len(c))
	for i, v := range c {
		neg[i] = -v
	}
	return neg
}

// Objective recomputes c·x. Reports and tests use it to cross-check
// the solver's returned optimum against the raw solution vector.
func Objective(c, x []float64) float64 {
	return floats.Dot(c, x)
}

// Binding reports whether value sits at bound within the absolute
// tolerance tol, i.e. whether the constraint has no slack.
func Binding(value, bound, tol float64) bool {
	return math.Abs(value-bound) <= tol
}

// Used reports whether a quantity is meaningfully above zero.
func Used(qty, tol float64) bool {
	return qty > tol
}
