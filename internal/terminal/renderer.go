// Package terminal draws a match on a tcell screen and turns key presses
// into match commands.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"puyo-puyo/internal/game"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/match"
	"puyo-puyo/internal/shared"
)

// Canvas is the part of tcell.Screen the renderer draws through.
type Canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayScores
	overlayName
)

const (
	// top-left visible cell; every board cell takes two columns and two
	// rows so links can be drawn between neighbours
	boardX = 1
	boardY = 1

	sideX    = boardX + 2*game.Width + 2
	previewY = 2
	hudY     = 16

	glyph = '●'
)

var palette = map[game.Color]tcell.Color{
	game.ColorRed:    tcell.ColorRed,
	game.ColorGreen:  tcell.ColorGreen,
	game.ColorYellow: tcell.ColorYellow,
	game.ColorPurple: tcell.ColorPurple,
}

// Renderer keeps the latest match state and repaints it when asked.
// Load calls only copy state, so the controller never waits on the
// terminal.
type Renderer struct {
	canvas Canvas

	mu       sync.Mutex
	board    game.Snapshot
	upcoming [2]game.PieceView
	hud      shared.Hud
	overlay  overlay
	scores   []highscore.Entry
	entry    nameEntry
	dirty    bool
}

// nameEntry is the high score name being typed.
type nameEntry struct {
	score int
	name  string
}

func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas, dirty: true}
}

func (r *Renderer) LoadBoard(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = s
	r.dirty = true
}

func (r *Renderer) LoadUpcoming(pieces [2]game.PieceView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upcoming = pieces
	r.dirty = true
}

// LoadHud also closes any overlay once the match is running again.
func (r *Renderer) LoadHud(h shared.Hud) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud = h
	if h.Started && !h.Paused && !h.Lost {
		r.overlay = overlayNone
	}
	r.dirty = true
}

func (r *Renderer) ShowHelp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlay = overlayHelp
	r.dirty = true
}

func (r *Renderer) ShowHighScores(entries []highscore.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = append([]highscore.Entry(nil), entries...)
	r.overlay = overlayScores
	r.dirty = true
}

func (r *Renderer) showNameEntry(score int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entry = nameEntry{score: score, name: name}
	r.overlay = overlayName
	r.dirty = true
}

func (r *Renderer) hideNameEntry() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlay == overlayName {
		r.overlay = overlayNone
		r.dirty = true
	}
}

// Dismiss closes the help or high score overlay.
func (r *Renderer) Dismiss() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlay == overlayNone || r.overlay == overlayName {
		return false
	}
	r.overlay = overlayNone
	r.dirty = true
	return true
}

// Draw repaints the canvas if anything changed since the last call.
func (r *Renderer) Draw() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return false
	}
	r.dirty = false

	r.canvas.Clear()
	r.drawFrame()
	r.drawBoard()
	r.drawUpcoming()
	r.drawHud()
	switch r.overlay {
	case overlayHelp:
		r.drawLines("Help", match.HelpText)
	case overlayScores:
		lines := make([]string, 0, len(r.scores))
		for i, e := range r.scores {
			lines = append(lines, fmt.Sprintf("%2d. %-12s %7d", i+1, e.Name, e.Score))
		}
		if len(lines) == 0 {
			lines = append(lines, "no scores yet")
		}
		r.drawLines("High scores", lines)
	case overlayName:
		r.drawLines("New high score", []string{
			fmt.Sprintf("Score %d", r.entry.score),
			"Name: " + r.entry.name + "_",
			"Enter to save",
		})
	}
	r.canvas.Show()
	return true
}

// Loop redraws at fps frames per second until done is closed.
func (r *Renderer) Loop(fps int, done <-chan struct{}) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			r.Draw()
		}
	}
}

// cellPos is the screen position of board cell (i,j); i counts from
// the first visible row.
func cellPos(i, j int) (x, y int) {
	return boardX + 2*j, boardY + 2*i
}

func (r *Renderer) drawFrame() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w := 2*game.Width - 1
	h := 2*(game.Height-game.HiddenRows) - 1
	left, right := boardX-1, boardX+w
	top, bottom := boardY-1, boardY+h
	for x := left + 1; x < right; x++ {
		r.canvas.SetContent(x, top, '─', nil, style)
		r.canvas.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.canvas.SetContent(left, y, '│', nil, style)
		r.canvas.SetContent(right, y, '│', nil, style)
	}
	r.canvas.SetContent(left, top, '┌', nil, style)
	r.canvas.SetContent(right, top, '┐', nil, style)
	r.canvas.SetContent(left, bottom, '└', nil, style)
	r.canvas.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawBoard() {
	for i, row := range r.board.Visible() {
		for j, cell := range row {
			if cell.Empty() {
				continue
			}
			style := tcell.StyleDefault.Foreground(palette[cell.Color])
			x, y := cellPos(i, j)
			r.canvas.SetContent(x, y, glyph, nil, style)
			if cell.LinkRight && j+1 < game.Width {
				r.canvas.SetContent(x+1, y, '─', nil, style)
			}
			if cell.LinkUp && i > 0 {
				r.canvas.SetContent(x, y-1, '│', nil, style)
			}
		}
	}
}

func (r *Renderer) drawUpcoming() {
	r.drawText(sideX, previewY-1, tcell.StyleDefault.Bold(true), "Next")
	for k, v := range r.upcoming {
		top := previewY + 6*k
		for _, c := range v.Cells {
			style := tcell.StyleDefault.Foreground(palette[c.Color])
			// spawn cells sit in rows 0-2 and columns 2-3
			r.canvas.SetContent(sideX+2*(c.Col-2), top+2*c.Row, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawHud() {
	style := tcell.StyleDefault
	r.drawText(sideX, hudY, style, fmt.Sprintf("Score  %d", r.hud.Score))
	r.drawText(sideX, hudY+1, style, fmt.Sprintf("Combo  %d", r.hud.Combo))
	r.drawText(sideX, hudY+2, style, fmt.Sprintf("Level  %d", r.hud.Difficulty))

	status := ""
	switch {
	case r.hud.Lost:
		status = "Game over"
	case !r.hud.Started:
		status = "Enter to start"
	case r.hud.Paused:
		status = "Paused"
	}
	r.drawText(sideX, hudY+4, style.Bold(true), status)
}

// drawLines paints a boxed list over the board.
func (r *Renderer) drawLines(title string, lines []string) {
	width := len(title)
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	style := tcell.StyleDefault.Reverse(true)
	for y := 0; y < len(lines)+2; y++ {
		for x := 0; x < width+2; x++ {
			r.canvas.SetContent(boardX+x, boardY+y, ' ', nil, style)
		}
	}
	r.drawText(boardX+1, boardY, style.Bold(true), title)
	for i, l := range lines {
		r.drawText(boardX+1, boardY+1+i, style, l)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Invalidate forces the next Draw to repaint, e.g. after a resize.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
}
