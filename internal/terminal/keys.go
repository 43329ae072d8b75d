package terminal

import (
	"github.com/gdamore/tcell/v2"

	"puyo-puyo/internal/match"
)

// KeyCommand maps a key press to a match command. Keys with no binding
// report false.
func KeyCommand(key tcell.Key, r rune) (match.Command, bool) {
	switch key {
	case tcell.KeyLeft:
		return match.CmdMoveLeft, true
	case tcell.KeyRight:
		return match.CmdMoveRight, true
	case tcell.KeyDown:
		return match.CmdRotateCW, true
	case tcell.KeyUp:
		return match.CmdRotateCCW, true
	case tcell.KeyEnter:
		return match.CmdStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return match.CmdNewGame, true
	case tcell.KeyPause:
		return match.CmdPause, true
	case tcell.KeyF1:
		return match.CmdHelp, true
	case tcell.KeyF2:
		return match.CmdHighScores, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return match.CmdQuit, true
	case tcell.KeyRune:
		return runeCommand(r)
	}
	return "", false
}

func runeCommand(r rune) (match.Command, bool) {
	switch r {
	case ' ':
		return match.CmdDrop, true
	case 'p', 'P':
		return match.CmdPause, true
	case '+':
		return match.CmdFaster, true
	case '?':
		return match.CmdHelp, true
	case 'm', 'M', 'h', 'H':
		return match.CmdHighScores, true
	}
	return "", false
}
