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

// Command opsplan solves the two fixed linear-programming instances —
// the electronics production mix and the base supply transportation
// problem — prints a report for each and writes the matching chart to
// the working directory. It takes no arguments. A solver failure in
// one task is reported and does not stop the other.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/planfab/opsplan/chart"
	"github.com/planfab/opsplan/production"
	"github.com/planfab/opsplan/transport"
)

const (
	productionChart = "production.png"
	transportChart  = "transport.png"
)

func main() {
	fmt.Printf("\n%s\n", strings.Repeat("=", 80))
	fmt.Println("Linear programming: production mix and transportation")
	fmt.Printf("%s\n", strings.Repeat("=", 80))

	ok := runProduction()

	fmt.Printf("\n%s\n", strings.Repeat("-", 80))

	if !runTransport() {
		ok = false
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 80))
	if !ok {
		os.Exit(1)
	}
	fmt.Println("All tasks solved")
	fmt.Printf("%s\n", strings.Repeat("=", 80))
}

func runProduction() bool {
	m := production.NewModel()
	plan, err := m.Optimize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return false
	}
	plan.WriteReport(os.Stdout)

	if err := chart.RegionChart(chart.DefaultStyle(), m, plan, productionChart); err != nil {
		fmt.Fprintf(os.Stderr, "error: rendering %s: %v\n", productionChart, err)
		return false
	}
	fmt.Printf("\nChart written to %s\n", productionChart)
	return true
}

func runTransport() bool {
	m := transport.NewModel()
	plan, err := m.Optimize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return false
	}
	plan.WriteReport(os.Stdout)

	style := chart.DefaultStyle()
	style.Width, style.Height = 14, 10
	if err := chart.FlowDiagram(style, m, plan, transportChart); err != nil {
		fmt.Fprintf(os.Stderr, "error: rendering %s: %v\n", transportChart, err)
		return false
	}
	fmt.Printf("\nChart written to %s\n", transportChart)
	return true
}
