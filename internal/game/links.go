package game

// ComputeLinks refreshes the link flags around (i,j): this cell's up and
// right links, the up link of the cell below and the right link of the
// cell to the left. Cells of piece that are still falling never get a
// horizontal link. piece may be nil.
func (b *Board) ComputeLinks(piece *Piece, i, j int) {
	if !Visible(i) {
		return
	}
	self := b.grid[i][j]
	if self == nil {
		return
	}

	if Visible(i - 1) {
		self.SetLink(LinkUp, self.Equal(b.grid[i-1][j]))
	}
	if i+1 < Height {
		if below := b.grid[i+1][j]; below != nil {
			below.SetLink(LinkUp, self.Equal(below))
		}
	}
	if j+1 < Width {
		right := b.grid[i][j+1]
		self.SetLink(LinkRight, self.Equal(right) && !piece.Contains(right))
	}
	if j-1 >= 0 {
		if left := b.grid[i][j-1]; left != nil {
			left.SetLink(LinkRight, self.Equal(left) && !piece.Contains(left))
		}
	}
}

// unlinkAround drops links that pointed into the now empty cell (i,j).
func (b *Board) unlinkAround(i, j int) {
	if i+1 < Height {
		if below := b.grid[i+1][j]; below != nil {
			below.SetLink(LinkUp, false)
		}
	}
	if j-1 >= 0 {
		if left := b.grid[i][j-1]; left != nil {
			left.SetLink(LinkRight, false)
		}
	}
}
