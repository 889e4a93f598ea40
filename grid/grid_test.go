package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_BadStep verifies that non-positive steps are rejected.
func TestNew_BadStep(t *testing.T) {
	for _, step := range []int{0, -20} {
		_, err := grid.New(step)
		require.ErrorIs(t, err, grid.ErrBadStep)
	}
}

// TestCreateCell_Duplicate verifies that a coordinate can be indexed once.
func TestCreateCell_Duplicate(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	_, err = g.CreateCell(3, 4, 1)
	require.NoError(t, err)
	_, err = g.CreateCell(3, 4, 1)
	require.ErrorIs(t, err, grid.ErrCellExists)
	require.Equal(t, 1, g.Len())
}

// TestLookup_NoKeyCollision guards against coordinate keys that would merge
// when concatenated as text, (1,23) and (12,3).
func TestLookup_NoKeyCollision(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	a, err := g.CreateCell(1, 23, 1)
	require.NoError(t, err)
	b, err := g.CreateCell(12, 3, 1)
	require.NoError(t, err)

	got, ok := g.Lookup(1, 23)
	require.True(t, ok)
	assert.Same(t, a, got)
	got, ok = g.Lookup(12, 3)
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = g.Lookup(0, 0)
	assert.False(t, ok)
}

// TestNewLattice_Defaults checks the 1280×720 lattice of 20-unit cells.
func TestNewLattice_Defaults(t *testing.T) {
	g, err := grid.NewLattice()
	require.NoError(t, err)
	assert.Equal(t, 64*36, g.Len())
	assert.Equal(t, 20, g.Step())

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, [4]int{0, 0, 1260, 700}, [4]int{minX, minY, maxX, maxY})

	c, ok := g.Lookup(1260, 700)
	require.True(t, ok)
	assert.Equal(t, 20, c.Size())
	assert.Equal(t, grid.Blank, c.State())
}

// TestNewLattice_Options verifies option validation.
func TestNewLattice_Options(t *testing.T) {
	cases := []struct {
		name string
		opt  grid.Option
	}{
		{"ZeroWidth", grid.WithWidth(0)},
		{"NegativeHeight", grid.WithHeight(-1)},
		{"ZeroStep", grid.WithStep(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewLattice(tc.opt)
			if !errors.Is(err, grid.ErrOptionViolation) {
				t.Errorf("NewLattice error = %v; want ErrOptionViolation", err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func points(g *grid.Grid, c *grid.Cell) []grid.Point {
	var out []grid.Point
	for n := range g.Neighbors(c) {
		out = append(out, n.Point())
	}
	return out
}

// TestNeighbors_Order checks the fixed +x, -x, +y, -y, diagonal order.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.NewLattice(grid.WithWidth(60), grid.WithHeight(60), grid.WithStep(20))
	require.NoError(t, err)

	centre, ok := g.Lookup(20, 20)
	require.True(t, ok)
	want := []grid.Point{
		{40, 20}, {0, 20}, {20, 40}, {20, 0},
		{40, 40}, {0, 40}, {40, 0}, {0, 0},
	}
	assert.Equal(t, want, points(g, centre))

	corner, ok := g.Lookup(0, 0)
	require.True(t, ok)
	assert.Equal(t, []grid.Point{{20, 0}, {0, 20}, {20, 20}}, points(g, corner))
}

// TestNeighbors_StopsEarly ensures the sequence honours an early break.
func TestNeighbors_StopsEarly(t *testing.T) {
	g, err := grid.NewLattice(grid.WithWidth(3), grid.WithHeight(3), grid.WithStep(1))
	require.NoError(t, err)
	centre, _ := g.Lookup(1, 1)

	count := 0
	for range g.Neighbors(centre) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestNeighbors_IncludesWalls: filtering walls is the search's job.
func TestNeighbors_IncludesWalls(t *testing.T) {
	g, err := grid.FromRows([]string{"..", "##"}, 1)
	require.NoError(t, err)
	c, _ := g.Lookup(0, 0)
	assert.Equal(t, []grid.Point{{1, 0}, {0, 1}, {1, 1}}, points(g, c))
}

//----------------------------------------------------------------------------//
// Endpoints
//----------------------------------------------------------------------------//

func lattice3(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewLattice(grid.WithWidth(3), grid.WithHeight(3), grid.WithStep(1))
	require.NoError(t, err)
	return g
}

func at(t *testing.T, g *grid.Grid, x, y int) *grid.Cell {
	t.Helper()
	c, ok := g.Lookup(x, y)
	require.True(t, ok, "no cell at (%d,%d)", x, y)
	return c
}

// TestSetEndpoint_Toggle: selecting the same cell twice clears it.
func TestSetEndpoint_Toggle(t *testing.T) {
	g := lattice3(t)
	c := at(t, g, 1, 1)

	require.NoError(t, g.SetEndpoint(c))
	assert.Equal(t, grid.Endpoint, c.State())
	assert.Equal(t, []*grid.Cell{c}, g.Endpoints())

	require.NoError(t, g.SetEndpoint(c))
	assert.Equal(t, grid.Blank, c.State())
	assert.Empty(t, g.Endpoints())
}

// TestSetEndpoint_ToggleKeepsOther removes only the re-selected endpoint.
func TestSetEndpoint_ToggleKeepsOther(t *testing.T) {
	g := lattice3(t)
	a, b := at(t, g, 0, 0), at(t, g, 2, 2)
	require.NoError(t, g.SetEndpoint(a))
	require.NoError(t, g.SetEndpoint(b))

	require.NoError(t, g.SetEndpoint(a))
	assert.Equal(t, []*grid.Cell{b}, g.Endpoints())
	assert.Same(t, b, g.Start())
	assert.Nil(t, g.Goal())
}

// TestSetEndpoint_FIFOEviction: a third endpoint evicts the oldest.
func TestSetEndpoint_FIFOEviction(t *testing.T) {
	g := lattice3(t)
	a, b, c := at(t, g, 0, 0), at(t, g, 1, 0), at(t, g, 2, 0)
	require.NoError(t, g.SetEndpoint(a))
	require.NoError(t, g.SetEndpoint(b))
	require.NoError(t, g.SetEndpoint(c))

	assert.Equal(t, grid.Blank, a.State())
	assert.Equal(t, []*grid.Cell{b, c}, g.Endpoints())
	assert.Same(t, b, g.Start())
	assert.Same(t, c, g.Goal())
}

// TestSetEndpoint_Rejections covers walls and foreign cells.
func TestSetEndpoint_Rejections(t *testing.T) {
	g := lattice3(t)
	w := at(t, g, 1, 1)
	w.SwitchWallState()
	require.ErrorIs(t, g.SetEndpoint(w), grid.ErrWallEndpoint)
	assert.Equal(t, grid.Wall, w.State())
	assert.Empty(t, g.Endpoints())

	other := lattice3(t)
	require.ErrorIs(t, g.SetEndpoint(at(t, other, 0, 0)), grid.ErrUnknownCell)
	require.ErrorIs(t, g.SetEndpoint(nil), grid.ErrUnknownCell)
}

// TestSetEndpoint_ClearsMarks: explored and path cells can be selected.
func TestSetEndpoint_ClearsMarks(t *testing.T) {
	g := lattice3(t)
	e, p := at(t, g, 0, 0), at(t, g, 1, 0)
	e.MarkExplored()
	p.MarkPath()

	require.NoError(t, g.SetEndpoint(e))
	require.NoError(t, g.SetEndpoint(p))
	assert.Equal(t, grid.Endpoint, e.State())
	assert.Equal(t, grid.Endpoint, p.State())
}

// TestClearEndpoints empties the list and blanks the cells.
func TestClearEndpoints(t *testing.T) {
	g := lattice3(t)
	a, b := at(t, g, 0, 0), at(t, g, 2, 2)
	require.NoError(t, g.SetEndpoint(a))
	require.NoError(t, g.SetEndpoint(b))

	g.ClearEndpoints()
	assert.Empty(t, g.Endpoints())
	assert.Equal(t, grid.Blank, a.State())
	assert.Equal(t, grid.Blank, b.State())
}

//----------------------------------------------------------------------------//
// Reset
//----------------------------------------------------------------------------//

// TestResetAll keeps walls and endpoints and clears everything else.
func TestResetAll(t *testing.T) {
	g, err := grid.FromRows([]string{
		"S#.",
		".#.",
		"..G",
	}, 1)
	require.NoError(t, err)
	for c := range g.Cells() {
		c.MarkExplored()
		c.SetGCost(3)
		c.SetHCost(4)
		c.SetParent(0)
	}
	at(t, g, 1, 2).MarkPath()

	g.ResetAll()
	assert.Equal(t, "S#.\n.#.\n..G\n", g.Render())
	for c := range g.Cells() {
		assert.Zero(t, c.GCost(), "%s", c)
		assert.Zero(t, c.HCost(), "%s", c)
		_, ok := c.Parent()
		assert.False(t, ok, "%s", c)
	}
}

// TestResetCosts leaves states untouched.
func TestResetCosts(t *testing.T) {
	g := lattice3(t)
	c := at(t, g, 1, 1)
	c.MarkExplored()
	c.SetGCost(9)

	g.ResetCosts()
	assert.Equal(t, grid.Explored, c.State())
	assert.Zero(t, c.GCost())
}
