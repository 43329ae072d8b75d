package game

// Cell is one grid position as handed to a renderer.
type Cell struct {
	Color     Color `json:"color"`
	LinkUp    bool  `json:"linkUp,omitempty"`
	LinkRight bool  `json:"linkRight,omitempty"`
}

func (c Cell) Empty() bool { return c.Color == ColorNone }

// Snapshot is an independent copy of the grid; mutating the board after
// taking it never shows through.
type Snapshot struct {
	Cells [Height][Width]Cell `json:"cells"`
}

// Visible returns only the playfield rows.
func (s Snapshot) Visible() [][Width]Cell {
	return s.Cells[HiddenRows:]
}

// PieceView describes a queued piece for previews.
type PieceView struct {
	Shape Shape           `json:"shape"`
	Cells []PieceCellView `json:"cells"`
}

type PieceCellView struct {
	Coord
	Color Color `json:"color"`
}

func (p *Piece) View() PieceView {
	v := PieceView{Shape: p.shape, Cells: make([]PieceCellView, len(p.cells))}
	for i, c := range p.cells {
		v.Cells[i] = PieceCellView{Coord: c.at, Color: c.puyo.Color()}
	}
	return v
}
