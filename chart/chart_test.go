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

package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfab/opsplan/production"
	"github.com/planfab/opsplan/transport"
)

func TestRegionChart(t *testing.T) {
	m := production.NewModel()
	plan, err := m.Optimize()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "production.png")
	require.NoError(t, RegionChart(DefaultStyle(), m, plan, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFlowDiagram(t *testing.T) {
	m := transport.NewModel()
	plan, err := m.Optimize()
	require.NoError(t, err)

	style := DefaultStyle()
	style.Width, style.Height = 14, 10

	path := filepath.Join(t.TempDir(), "transport.png")
	require.NoError(t, FlowDiagram(style, m, plan, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
