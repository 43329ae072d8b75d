package game

// SetCell fixes a new puyo of color c at (i,j).
func SetCell(b *Board, i, j int, c Color) *Puyo {
	p := NewPuyo(c)
	b.grid[i][j] = p
	return p
}

// MarkDirty queues coordinates for the next ClearBlocks.
func MarkDirty(b *Board, cells ...Coord) {
	b.dirty = append(b.dirty, cells...)
}
