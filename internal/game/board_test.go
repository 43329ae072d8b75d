package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puyo-puyo/internal/game"
)

// assertMirrored checks that every falling cell sits in the grid at the
// coordinate the piece records and that nothing else occupies the board.
func assertMirrored(t *testing.T, b *game.Board, p *game.Piece, fixed int) {
	t.Helper()
	for _, c := range p.Cells() {
		assert.Same(t, c.Puyo, b.PuyoAt(c.At.Row, c.At.Col), "cell %v", c.At)
	}
	occupied := 0
	for i := 0; i < game.Height; i++ {
		for j := 0; j < game.Width; j++ {
			if !b.IsFree(i, j) {
				occupied++
			}
		}
	}
	assert.Equal(t, p.Len()+fixed, occupied)
}

// dropTo lowers a fresh piece n rows.
func dropTo(t *testing.T, b *game.Board, p *game.Piece, n int) {
	t.Helper()
	for k := 0; k < n; k++ {
		require.Equal(t, game.Active, b.DropOneStep(p))
	}
}

func TestDoubleFallsToFloor(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorRed)
	b.AddPiece(p)
	assertMirrored(t, b, p, 0)

	steps := 0
	for {
		status := b.DropOneStep(p)
		steps++
		if status != game.Active {
			require.Equal(t, game.Settled, status)
			break
		}
		require.False(t, p.IsBroken())
		assertMirrored(t, b, p, 0)
	}

	// the lower cell travels from row 2 to row 14, then one more step fixes both
	assert.Equal(t, game.Height-2, steps)
	assert.True(t, p.Empty())
	assert.True(t, p.IsBroken())
	assert.Equal(t, game.ColorRed, b.ColorAt(game.Height-1, 2))
	assert.Equal(t, game.ColorRed, b.ColorAt(game.Height-2, 2))
	assert.True(t, b.PuyoAt(game.Height-1, 2).Link(game.LinkUp))

	assert.Equal(t, 0, b.ClearBlocks())
	assert.False(t, b.IsFree(game.Height-1, 2))
}

func TestElbowBreaksWhenOneCellLands(t *testing.T) {
	b := game.NewBoard()
	// column 3 is filled up to row 8, column 2 is open
	for i := 8; i < game.Height; i++ {
		game.SetCell(b, i, 3, []game.Color{game.ColorGreen, game.ColorYellow}[i%2])
	}
	p := game.NewPieceWithColors(game.Elbow, game.ColorRed, game.ColorRed, game.ColorPurple)
	b.AddPiece(p)
	fixed := game.Height - 8

	for !p.IsBroken() {
		require.Equal(t, game.Active, b.DropOneStep(p))
		if !p.IsBroken() {
			assertMirrored(t, b, p, fixed)
		}
	}
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, game.ColorPurple, b.ColorAt(7, 3))

	assert.False(t, b.MoveHorizontal(game.Left, p), "broken pieces ignore input")
	assert.False(t, b.Rotate(game.Clockwise, p))

	status := game.Active
	for status == game.Active {
		status = b.DropOneStep(p)
	}
	assert.Equal(t, game.Settled, status)
	assert.Equal(t, game.ColorRed, b.ColorAt(game.Height-1, 2))
	assert.Equal(t, game.ColorRed, b.ColorAt(game.Height-2, 2))
}

func TestMoveHorizontal(t *testing.T) {
	t.Run("gated inside spawn buffer", func(t *testing.T) {
		b := game.NewBoard()
		p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
		b.AddPiece(p)
		before := coords(p)

		assert.False(t, b.MoveHorizontal(game.Left, p))
		assert.Equal(t, before, coords(p))
		assertMirrored(t, b, p, 0)
	})

	t.Run("allowed once visible", func(t *testing.T) {
		b := game.NewBoard()
		p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
		b.AddPiece(p)
		dropTo(t, b, p, 1)

		require.True(t, b.MoveHorizontal(game.Left, p))
		for _, c := range p.Cells() {
			assert.Equal(t, 1, c.At.Col)
			assert.True(t, b.IsFree(c.At.Row, 2))
		}
		assertMirrored(t, b, p, 0)
	})

	t.Run("stops at walls", func(t *testing.T) {
		b := game.NewBoard()
		p := game.NewPieceWithColors(game.Elbow, game.ColorRed, game.ColorGreen, game.ColorYellow)
		b.AddPiece(p)
		dropTo(t, b, p, 2)

		moves := 0
		for b.MoveHorizontal(game.Right, p) {
			moves++
		}
		assert.Equal(t, 2, moves)
		assert.Equal(t, game.Width-1, p.Bounds().MaxCol)

		moves = 0
		for b.MoveHorizontal(game.Left, p) {
			moves++
		}
		assert.Equal(t, game.Width-2, moves)
		assert.Equal(t, 0, p.Bounds().MinCol)
		assertMirrored(t, b, p, 0)
	})

	t.Run("blocked by a fixed puyo", func(t *testing.T) {
		b := game.NewBoard()
		p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
		b.AddPiece(p)
		dropTo(t, b, p, 3)
		blocker := game.SetCell(b, p.Bounds().MaxRow, 1, game.ColorYellow)
		before := coords(p)

		assert.False(t, b.MoveHorizontal(game.Left, p))
		assert.Equal(t, before, coords(p))
		assert.Same(t, blocker, b.PuyoAt(p.Bounds().MaxRow, 1))
	})

	t.Run("upper cell may not overwrite", func(t *testing.T) {
		b := game.NewBoard()
		p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
		b.AddPiece(p)
		dropTo(t, b, p, 3)
		blocker := game.SetCell(b, p.Bounds().MinRow, 3, game.ColorYellow)

		assert.False(t, b.MoveHorizontal(game.Right, p))
		assert.Same(t, blocker, b.PuyoAt(p.Bounds().MinRow, 3))
	})
}

func TestRotate(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
	b.AddPiece(p)
	dropTo(t, b, p, 4)
	start := coords(p)
	assert.ElementsMatch(t, []game.Coord{{Row: 5, Col: 2}, {Row: 6, Col: 2}}, start)

	require.True(t, b.Rotate(game.Clockwise, p))
	assert.ElementsMatch(t, []game.Coord{{Row: 6, Col: 3}, {Row: 6, Col: 2}}, coords(p))
	assert.True(t, b.IsFree(5, 2))
	assertMirrored(t, b, p, 0)

	require.True(t, b.Rotate(game.CounterClockwise, p))
	assert.Equal(t, start, coords(p))
	assertMirrored(t, b, p, 0)
}

func TestRotateThroughOwnCells(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Elbow, game.ColorRed, game.ColorGreen, game.ColorYellow)
	b.AddPiece(p)
	dropTo(t, b, p, 4)

	// the top cell swings into the slot still held by the right cell
	require.True(t, b.Rotate(game.Clockwise, p))
	assert.ElementsMatch(t, []game.Coord{{Row: 6, Col: 3}, {Row: 6, Col: 2}, {Row: 7, Col: 2}}, coords(p))
	assertMirrored(t, b, p, 0)
}

func TestRotateIsAtomic(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Elbow, game.ColorRed, game.ColorGreen, game.ColorYellow)
	b.AddPiece(p)
	dropTo(t, b, p, 4)
	game.SetCell(b, 7, 2, game.ColorPurple)

	before := coords(p)
	grid := b.Snapshot()

	assert.False(t, b.Rotate(game.Clockwise, p))
	assert.Equal(t, before, coords(p))
	assert.Equal(t, grid, b.Snapshot())
	assertMirrored(t, b, p, 1)
}

func TestRotateRejectsTopVisibleRow(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
	b.AddPiece(p)
	dropTo(t, b, p, 2)

	require.True(t, b.Rotate(game.Clockwise, p))
	before := coords(p)
	// turning back would put the top cell on row 3
	assert.False(t, b.Rotate(game.CounterClockwise, p))
	assert.Equal(t, before, coords(p))
}

func TestRotateRejectsWalls(t *testing.T) {
	b := game.NewBoard()
	p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorGreen)
	b.AddPiece(p)
	dropTo(t, b, p, 4)
	for b.MoveHorizontal(game.Right, p) {
	}
	before := coords(p)

	assert.False(t, b.Rotate(game.Clockwise, p))
	assert.Equal(t, before, coords(p))
}

func TestDropLostInsideSpawnBuffer(t *testing.T) {
	stack := func() *game.Board {
		b := game.NewBoard()
		for i := game.HiddenRows; i < game.Height; i++ {
			game.SetCell(b, i, 2, []game.Color{game.ColorGreen, game.ColorYellow}[i%2])
		}
		return b
	}

	tests := []struct {
		shape  game.Shape
		colors []game.Color
	}{
		{game.Double, []game.Color{game.ColorRed, game.ColorRed}},
		{game.Triple, []game.Color{game.ColorRed, game.ColorRed, game.ColorRed}},
		{game.Elbow, []game.Color{game.ColorRed, game.ColorRed, game.ColorRed}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			b := stack()
			p := game.NewPieceWithColors(tt.shape, tt.colors...)
			b.AddPiece(p)
			assert.Equal(t, game.Lost, b.DropOneStep(p))
		})
	}
}

func TestLinksSkipFallingNeighbour(t *testing.T) {
	b := game.NewBoard()
	left := game.SetCell(b, game.Height-1, 1, game.ColorRed)
	b.ComputeLinks(nil, game.Height-1, 1)

	p := game.NewPieceWithColors(game.Double, game.ColorRed, game.ColorRed)
	b.AddPiece(p)
	dropTo(t, b, p, game.Height-3)
	// lower cell is at the floor next to left but has not been fixed yet
	b.ComputeLinks(p, game.Height-1, 1)
	assert.False(t, left.Link(game.LinkRight))

	require.Equal(t, game.Settled, b.DropOneStep(p))
	assert.True(t, left.Link(game.LinkRight))
}

func TestSnapshotIsACopy(t *testing.T) {
	b := game.NewBoard()
	game.SetCell(b, 10, 0, game.ColorRed)
	s := b.Snapshot()

	game.SetCell(b, 11, 0, game.ColorGreen)
	b.PuyoAt(10, 0).SetLink(game.LinkUp, true)

	assert.Equal(t, game.ColorRed, s.Cells[10][0].Color)
	assert.False(t, s.Cells[10][0].LinkUp)
	assert.True(t, s.Cells[11][0].Empty())
	assert.Len(t, s.Visible(), game.Height-game.HiddenRows)
}

func TestColorAtEmptyPanics(t *testing.T) {
	b := game.NewBoard()
	assert.Panics(t, func() { b.ColorAt(5, 5) })
}

func TestString(t *testing.T) {
	b := game.NewBoard()
	game.SetCell(b, game.Height-1, 0, game.ColorGreen)
	assert.Contains(t, b.String(), "g . . . . .")
}
