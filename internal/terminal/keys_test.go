package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"puyo-puyo/internal/match"
	"puyo-puyo/internal/terminal"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want match.Command
	}{
		{"left", tcell.KeyLeft, 0, match.CmdMoveLeft},
		{"right", tcell.KeyRight, 0, match.CmdMoveRight},
		{"down rotates clockwise", tcell.KeyDown, 0, match.CmdRotateCW},
		{"up rotates back", tcell.KeyUp, 0, match.CmdRotateCCW},
		{"space drops", tcell.KeyRune, ' ', match.CmdDrop},
		{"enter", tcell.KeyEnter, 0, match.CmdStart},
		{"backspace", tcell.KeyBackspace2, 0, match.CmdNewGame},
		{"p", tcell.KeyRune, 'p', match.CmdPause},
		{"pause key", tcell.KeyPause, 0, match.CmdPause},
		{"plus", tcell.KeyRune, '+', match.CmdFaster},
		{"f1", tcell.KeyF1, 0, match.CmdHelp},
		{"question mark", tcell.KeyRune, '?', match.CmdHelp},
		{"f2", tcell.KeyF2, 0, match.CmdHighScores},
		{"m", tcell.KeyRune, 'm', match.CmdHighScores},
		{"escape", tcell.KeyEscape, 0, match.CmdQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, match.CmdQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := terminal.KeyCommand(tt.key, tt.r)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyCommandUnbound(t *testing.T) {
	_, ok := terminal.KeyCommand(tcell.KeyRune, 'x')
	assert.False(t, ok)
	_, ok = terminal.KeyCommand(tcell.KeyTab, 0)
	assert.False(t, ok)
}
