package game

import "github.com/kamstrup/intmap"

// GroupScore is what a cleared group of size n is worth.
func GroupScore(n int) int {
	if n < MinGroup {
		return 0
	}
	return 100 + 10*(n-MinGroup)
}

// ConnectedGroup returns every visible cell 4-connected to start that has
// the same color. An empty or hidden start yields nil.
func (b *Board) ConnectedGroup(start Coord) []Coord {
	if !start.inBounds() || !Visible(start.Row) || b.at(start) == nil {
		return nil
	}
	color := b.at(start).Color()

	seen := intmap.New[int, struct{}](Width * Height)
	seen.Put(start.index(), struct{}{})
	stack := []Coord{start}
	var group []Coord

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, c)

		for _, n := range [4]Coord{
			{c.Row + 1, c.Col}, {c.Row - 1, c.Col},
			{c.Row, c.Col + 1}, {c.Row, c.Col - 1},
		} {
			if !n.inBounds() || !Visible(n.Row) {
				continue
			}
			if _, ok := seen.Get(n.index()); ok {
				continue
			}
			if p := b.at(n); p == nil || p.Color() != color {
				continue
			}
			seen.Put(n.index(), struct{}{})
			stack = append(stack, n)
		}
	}
	return group
}

// ClearBlocks looks at every cell fixed or moved since the last call and
// removes each connected group of MinGroup or more. It returns the points
// earned, 0 when nothing was cleared. The pending list is always reset.
func (b *Board) ClearBlocks() int {
	score := 0
	for _, c := range b.dirty {
		if b.at(c) == nil {
			continue
		}
		group := b.ConnectedGroup(c)
		if len(group) < MinGroup {
			continue
		}
		score += GroupScore(len(group))
		for _, g := range group {
			b.grid[g.Row][g.Col] = nil
		}
		for _, g := range group {
			b.unlinkAround(g.Row, g.Col)
		}
	}
	b.dirty = b.dirty[:0]
	return score
}

// CollapseGravity lets every visible puyo fall through the empty cells
// beneath it. Moved puyos are queued for the next ClearBlocks.
func (b *Board) CollapseGravity() {
	for i := Height - 2; i >= HiddenRows; i-- {
		for j := 0; j < Width; j++ {
			if b.grid[i][j] == nil {
				continue
			}
			to := i
			for to+1 < Height && b.grid[to+1][j] == nil {
				to++
			}
			if to == i {
				continue
			}
			b.grid[to][j] = b.grid[i][j]
			b.grid[i][j] = nil

			b.dirty = append(b.dirty, Coord{Row: to, Col: j})
			b.ComputeLinks(nil, to, j)
			if j > 0 && b.grid[i][j-1] != nil {
				b.ComputeLinks(nil, i, j-1)
			}
		}
	}
}

// Pending reports how many coordinates wait for the next ClearBlocks.
func (b *Board) Pending() int {
	return len(b.dirty)
}
