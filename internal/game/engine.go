package game

import (
	"fmt"
	"strings"
)

// Board is the grid of fixed and falling puyos. Row 0 is the top of the
// spawn buffer, rows HiddenRows..Height-1 are the playfield.
type Board struct {
	grid [Height][Width]*Puyo
	// coordinates fixed or moved since the last ClearBlocks
	dirty []Coord
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) IsFree(i, j int) bool {
	return b.grid[i][j] == nil
}

// PuyoAt returns nil on an empty cell.
func (b *Board) PuyoAt(i, j int) *Puyo {
	return b.grid[i][j]
}

// ColorAt must not be called on an empty cell.
func (b *Board) ColorAt(i, j int) Color {
	p := b.grid[i][j]
	if p == nil {
		panic(fmt.Sprintf("game: ColorAt on empty cell (%d,%d)", i, j))
	}
	return p.Color()
}

func (b *Board) at(c Coord) *Puyo {
	return b.grid[c.Row][c.Col]
}

// Place erases old (if any) from the grid and writes piece at its
// current coordinates. Every piece-driven write goes through here.
func (b *Board) Place(old, piece *Piece) {
	if old != nil {
		for _, c := range old.cells {
			b.grid[c.at.Row][c.at.Col] = nil
		}
	}
	for _, c := range piece.cells {
		b.grid[c.at.Row][c.at.Col] = c.puyo
	}
}

// AddPiece spawns piece into the grid.
func (b *Board) AddPiece(piece *Piece) {
	b.Place(nil, piece)
}

// MoveHorizontal shifts piece one column. Nothing happens while the
// piece is still entirely inside the spawn buffer, once it is broken, or
// when a destination is out of bounds or taken by another puyo.
func (b *Board) MoveHorizontal(dir Direction, piece *Piece) bool {
	if piece.Empty() || piece.IsBroken() {
		return false
	}
	bounds := piece.Bounds()
	if bounds.MaxRow < HiddenRows {
		return false
	}

	edge := bounds.MinCol - 1
	if dir == Right {
		edge = bounds.MaxCol + 1
	}
	if edge < 0 || edge >= Width || !b.IsFree(bounds.MaxRow, edge) {
		return false
	}
	for _, c := range piece.cells {
		to := Coord{Row: c.at.Row, Col: c.at.Col + int(dir)}
		if occupant := b.at(to); occupant != nil && !piece.Contains(occupant) {
			return false
		}
	}

	b.Place(piece.TranslateHorizontal(dir), piece)
	return true
}

// DropOneStep moves every falling cell of piece down one row, bottom
// cells first so a cell can follow into the slot its neighbour just left.
// Cells that cannot move are fixed: they leave the piece, the piece breaks
// and their links are computed. A cell fixed inside the spawn buffer ends
// the game at once.
func (b *Board) DropOneStep(piece *Piece) DropStatus {
	for _, c := range piece.bottomUp() {
		i, j := c.at.Row, c.at.Col
		if i+1 < Height && b.grid[i+1][j] == nil {
			b.grid[i+1][j] = c.puyo
			b.grid[i][j] = nil
			piece.move(c.puyo, Coord{Row: i + 1, Col: j})
			continue
		}

		if i < HiddenRows {
			return Lost
		}
		piece.remove(c.puyo)
		piece.MarkBroken()
		b.dirty = append(b.dirty, Coord{Row: i, Col: j})
		b.ComputeLinks(piece, i, j)
	}

	if piece.Empty() {
		return Settled
	}
	return Active
}

// Rotate turns piece 90 degrees around its pivot. Targets must be inside
// the playfield below row HiddenRows and either empty or held by this
// same piece; if any target fails the piece is left exactly as it was.
func (b *Board) Rotate(sense Sense, piece *Piece) bool {
	if piece.Empty() || piece.IsBroken() {
		return false
	}
	pivot, ok := piece.PivotCoord()
	if !ok {
		panic("game: rotating a piece without its pivot")
	}

	targets := make([]Coord, len(piece.cells))
	for k, c := range piece.cells {
		if c.puyo == piece.pivot {
			targets[k] = c.at
			continue
		}
		to := Coord{
			Row: int(sense)*(c.at.Col-pivot.Col) + pivot.Row,
			Col: -int(sense)*(c.at.Row-pivot.Row) + pivot.Col,
		}
		if to.Row <= HiddenRows || !to.inBounds() {
			return false
		}
		if occupant := b.at(to); occupant != nil && !piece.Contains(occupant) {
			return false
		}
		targets[k] = to
	}

	old := piece.Clone()
	for k := range piece.cells {
		piece.cells[k].at = targets[k]
	}
	b.Place(old, piece)
	return true
}

// Snapshot copies the grid by value for a renderer.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := 0; i < Height; i++ {
		for j := 0; j < Width; j++ {
			p := b.grid[i][j]
			if p == nil {
				continue
			}
			s.Cells[i][j] = Cell{
				Color:     p.Color(),
				LinkUp:    p.Link(LinkUp),
				LinkRight: p.Link(LinkRight),
			}
		}
	}
	return s
}

func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < Height; i++ {
		for j := 0; j < Width; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.grid[i][j].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
