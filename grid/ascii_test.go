package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestFromRows_Errors verifies that malformed maps are rejected.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		step int
		err  error
	}{
		{"NoRows", nil, 1, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, 1, grid.ErrEmptyGrid},
		{"Ragged", []string{"...", ".."}, 1, grid.ErrNonRectangular},
		{"Glyph", []string{".x."}, 1, grid.ErrBadGlyph},
		{"TwoStarts", []string{"S.S"}, 1, grid.ErrTooManyEndpoints},
		{"TwoGoals", []string{"G", "G"}, 1, grid.ErrTooManyEndpoints},
		{"Step", []string{"."}, 0, grid.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows, tc.step)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromRows_Layout checks coordinates, walls and endpoint order.
func TestFromRows_Layout(t *testing.T) {
	g, err := grid.FromRows([]string{
		"G..",
		".#S",
	}, 20)
	require.NoError(t, err)
	require.Equal(t, 6, g.Len())

	wall, ok := g.Lookup(20, 20)
	require.True(t, ok)
	assert.Equal(t, grid.Wall, wall.State())

	require.Len(t, g.Endpoints(), 2)
	assert.Equal(t, grid.Point{X: 40, Y: 20}, g.Start().Point())
	assert.Equal(t, grid.Point{X: 0, Y: 0}, g.Goal().Point())
}

// TestRender_RoundTrip renders every state glyph.
func TestRender_RoundTrip(t *testing.T) {
	rows := []string{
		"S.#",
		"..G",
	}
	g, err := grid.FromRows(rows, 5)
	require.NoError(t, err)
	assert.Equal(t, "S.#\n..G\n", g.Render())

	c, _ := g.Lookup(5, 0)
	c.MarkExplored()
	c, _ = g.Lookup(5, 5)
	c.MarkPath()
	assert.Equal(t, "So#\n.*G\n", g.String())
}

// TestRender_Sparse draws missing lattice positions as spaces.
func TestRender_Sparse(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	_, err = g.CreateCell(0, 0, 1)
	require.NoError(t, err)
	_, err = g.CreateCell(2, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, ".  \n  .\n", g.Render())
	empty, _ := grid.New(1)
	assert.Empty(t, empty.Render())
}
