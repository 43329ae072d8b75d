package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"puyo-puyo/internal/match"
)

type commander struct {
	got []match.Command
}

func (c *commander) Handle(cmd match.Command) error {
	c.got = append(c.got, cmd)
	if cmd == match.CmdQuit {
		return match.ErrQuit
	}
	return nil
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	r := NewRenderer(newFakeCanvas())
	r.Draw()

	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventResize(80, 24)
	close(events)

	c := &commander{}
	assert.NoError(t, Run(events, r, c, nil))
	assert.Empty(t, c.got)
	assert.True(t, r.Draw(), "resize repaints")
}

func TestDispatch(t *testing.T) {
	r := NewRenderer(newFakeCanvas())
	c := &commander{}

	assert.False(t, dispatch(tcell.KeyLeft, 0, r, c, nil))
	assert.False(t, dispatch(tcell.KeyRune, ' ', r, c, nil))
	assert.Equal(t, []match.Command{match.CmdMoveLeft, match.CmdDrop}, c.got)

	r.ShowHelp()
	assert.False(t, dispatch(tcell.KeyRune, 'x', r, c, nil))
	assert.False(t, r.Dismiss(), "unbound key already closed the overlay")

	assert.True(t, dispatch(tcell.KeyEscape, 0, r, c, nil))
}

func TestDispatchRoutesKeysToOpenPrompt(t *testing.T) {
	r := NewRenderer(newFakeCanvas())
	p := NewNamePrompt(r)
	c := &commander{}
	got := ask(t, p, 500)

	assert.False(t, dispatch(tcell.KeyRune, 'b', r, c, p))
	assert.False(t, dispatch(tcell.KeyRune, 'o', r, c, p))
	assert.False(t, dispatch(tcell.KeyEscape, 0, r, c, p), "escape cancels the prompt, not the game")
	assert.Equal(t, "", <-got)

	got = ask(t, p, 500)
	dispatch(tcell.KeyRune, 'b', r, c, p)
	dispatch(tcell.KeyRune, 'o', r, c, p)
	dispatch(tcell.KeyEnter, 0, r, c, p)
	assert.Equal(t, "bo", <-got)
	assert.Empty(t, c.got)

	assert.False(t, dispatch(tcell.KeyEnter, 0, r, c, p))
	assert.Equal(t, []match.Command{match.CmdStart}, c.got)
}
