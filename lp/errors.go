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

type SolveError int

const (
	ErrIterationLimit SolveError = iota + 1
	ErrModelInfeasible
	ErrModelUnbounded
	ErrNumericalFailure
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrIterationLimit:
		return "iteration limit reached before an optimum was found"
	case ErrModelInfeasible:
		return "model is infeasible"
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrNumericalFailure:
		return "numerical failure while solving"
	default:
		panic("unrecognized error")
	}
}

// statusError maps the solver's status codes (same convention as
// scipy's linprog: 1 iteration limit, 2 infeasible, 3 unbounded) to
// SolveError values.
func statusError(status int) SolveError {
	switch status {
	case 1:
		return ErrIterationLimit
	case 2:
		return ErrModelInfeasible
	case 3:
		return ErrModelUnbounded
	default:
		return ErrNumericalFailure
	}
}
