package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

type Shape int

const (
	Double Shape = iota
	Triple
	Elbow
)

func (s Shape) String() string {
	switch s {
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Elbow:
		return "elbow"
	}
	return "unknown"
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// spawn coordinates per shape, pivot listed at pivotIndex.
var spawnLayouts = map[Shape][]Coord{
	Double: {{1, 2}, {2, 2}},
	Triple: {{0, 2}, {1, 2}, {2, 2}},
	Elbow:  {{1, 2}, {2, 2}, {2, 3}},
}

const pivotIndex = 1

type pieceCell struct {
	puyo *Puyo
	at   Coord
}

// Piece is a falling group of 2 or 3 puyos. It only keeps coordinate
// handles; the board owns the grid the coordinates point into.
type Piece struct {
	shape  Shape
	cells  []pieceCell
	pivot  *Puyo
	broken bool
}

// NewPiece picks a shape and its colors from rng.
func NewPiece(rng *rand.Rand) *Piece {
	shape := Shape(rng.Intn(3))
	layout := spawnLayouts[shape]
	colors := make([]Color, len(layout))
	for i := range colors {
		colors[i] = Palette[rng.Intn(len(Palette))]
	}
	return NewPieceWithColors(shape, colors...)
}

// NewPieceWithColors builds a piece at its spawn position. Colors are
// assigned top to bottom, left to right; missing colors are an error of
// the caller.
func NewPieceWithColors(shape Shape, colors ...Color) *Piece {
	layout, ok := spawnLayouts[shape]
	if !ok {
		panic(fmt.Sprintf("game: unknown shape %d", shape))
	}
	if len(colors) != len(layout) {
		panic(fmt.Sprintf("game: %s piece needs %d colors, got %d", shape, len(layout), len(colors)))
	}

	p := &Piece{shape: shape, cells: make([]pieceCell, len(layout))}
	for i, at := range layout {
		p.cells[i] = pieceCell{puyo: NewPuyo(colors[i]), at: at}
	}
	p.pivot = p.cells[pivotIndex].puyo
	return p
}

func (p *Piece) Shape() Shape { return p.shape }

// Len is the number of cells still falling.
func (p *Piece) Len() int { return len(p.cells) }

func (p *Piece) Empty() bool { return len(p.cells) == 0 }

func (p *Piece) IsBroken() bool { return p.broken }

// MarkBroken is one way.
func (p *Piece) MarkBroken() { p.broken = true }

func (p *Piece) Pivot() *Puyo { return p.pivot }

// PivotCoord returns the pivot's position, false once it has been fixed.
func (p *Piece) PivotCoord() (Coord, bool) {
	return p.At(p.pivot)
}

// At returns the coordinate of puyo inside this piece.
func (p *Piece) At(puyo *Puyo) (Coord, bool) {
	if i := p.indexOf(puyo); i >= 0 {
		return p.cells[i].at, true
	}
	return Coord{}, false
}

// Contains tests identity, not color.
func (p *Piece) Contains(puyo *Puyo) bool {
	return p != nil && p.indexOf(puyo) >= 0
}

func (p *Piece) indexOf(puyo *Puyo) int {
	if puyo == nil {
		return -1
	}
	for i, c := range p.cells {
		if c.puyo == puyo {
			return i
		}
	}
	return -1
}

// Cells returns the puyos still attached with their coordinates.
func (p *Piece) Cells() []PieceCell {
	out := make([]PieceCell, len(p.cells))
	for i, c := range p.cells {
		out[i] = PieceCell{Puyo: c.puyo, At: c.at}
	}
	return out
}

type PieceCell struct {
	Puyo *Puyo
	At   Coord
}

type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Bounds of an empty piece are meaningless; callers check Empty first.
func (p *Piece) Bounds() Bounds {
	b := Bounds{MinRow: Height, MaxRow: -1, MinCol: Width, MaxCol: -1}
	for _, c := range p.cells {
		b.MinRow = min(b.MinRow, c.at.Row)
		b.MaxRow = max(b.MaxRow, c.at.Row)
		b.MinCol = min(b.MinCol, c.at.Col)
		b.MaxCol = max(b.MaxCol, c.at.Col)
	}
	return b
}

// Clone keeps the same puyos but copies the coordinates.
func (p *Piece) Clone() *Piece {
	c := *p
	c.cells = make([]pieceCell, len(p.cells))
	copy(c.cells, p.cells)
	return &c
}

// TranslateHorizontal shifts every cell by one column and returns the
// state before the shift. It never checks legality.
func (p *Piece) TranslateHorizontal(dir Direction) *Piece {
	old := p.Clone()
	for i := range p.cells {
		p.cells[i].at.Col += int(dir)
	}
	return old
}

func (p *Piece) move(puyo *Puyo, to Coord) {
	if i := p.indexOf(puyo); i >= 0 {
		p.cells[i].at = to
	}
}

func (p *Piece) remove(puyo *Puyo) {
	if i := p.indexOf(puyo); i >= 0 {
		p.cells = append(p.cells[:i], p.cells[i+1:]...)
	}
}

// bottomUp lists the cells from the lowest row to the highest.
func (p *Piece) bottomUp() []pieceCell {
	out := make([]pieceCell, len(p.cells))
	copy(out, p.cells)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].at.Row != out[j].at.Row {
			return out[i].at.Row > out[j].at.Row
		}
		return out[i].at.Col < out[j].at.Col
	})
	return out
}

func (p *Piece) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s piece:", p.shape)
	for _, c := range p.cells {
		fmt.Fprintf(&sb, " %s@(%d,%d)", c.puyo.Color(), c.at.Row, c.at.Col)
	}
	return sb.String()
}
