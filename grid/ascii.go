package grid

import (
	"fmt"
	"strings"
)

// Map glyphs understood by FromRows and produced by Render.
const (
	GlyphBlank    = '.'
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphExplored = 'o'
	GlyphPath     = '*'
)

// FromRows builds a grid from an ASCII map. Row r, column c becomes the cell
// at (c*step, r*step). '.' is blank, '#' a wall, 'S' the first endpoint and
// 'G' the second.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadGlyph or ErrTooManyEndpoints
// for malformed maps.
func FromRows(rows []string, step int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(step)
	if err != nil {
		return nil, err
	}
	var start, goal *Cell
	for y, row := range rows {
		for x := 0; x < w; x++ {
			c, err := g.CreateCell(x*step, y*step, step)
			if err != nil {
				return nil, err
			}
			switch ch := row[x]; ch {
			case GlyphBlank:
			case GlyphWall:
				c.SwitchWallState()
			case GlyphStart, GlyphGoal:
				slot := &start
				if ch == GlyphGoal {
					slot = &goal
				}
				if *slot != nil {
					return nil, fmt.Errorf("%w: %q", ErrTooManyEndpoints, ch)
				}
				*slot = c
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadGlyph, ch, y, x)
			}
		}
	}
	// Start goes in first so it is the oldest endpoint.
	for _, c := range []*Cell{start, goal} {
		if c == nil {
			continue
		}
		if err = g.SetEndpoint(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Render draws the grid as ASCII, one line per row from the smallest y.
// Positions inside the bounds that hold no cell are drawn as spaces.
func (g *Grid) Render() string {
	if len(g.cells) == 0 {
		return ""
	}
	minX, minY, maxX, maxY := g.Bounds()
	var sb strings.Builder
	for y := minY; y <= maxY; y += g.step {
		for x := minX; x <= maxX; x += g.step {
			c, ok := g.Lookup(x, y)
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteByte(g.glyph(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer with Render.
func (g *Grid) String() string { return g.Render() }

func (g *Grid) glyph(c *Cell) byte {
	switch c.state {
	case Wall:
		return GlyphWall
	case Endpoint:
		if g.endpointIndex(c) == 1 {
			return GlyphGoal
		}
		return GlyphStart
	case Explored:
		return GlyphExplored
	case Path:
		return GlyphPath
	default:
		return GlyphBlank
	}
}
