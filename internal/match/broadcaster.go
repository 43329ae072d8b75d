package match

import (
	"puyo-puyo/internal/game"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/shared"
)

// Renderer receives copies of the match state. Calls must not block;
// a renderer draws at its own pace.
type Renderer interface {
	LoadBoard(s game.Snapshot)
	LoadUpcoming(pieces [2]game.PieceView)
	LoadHud(h shared.Hud)
	ShowHelp()
	ShowHighScores(entries []highscore.Entry)
}

type Broadcaster interface {
	Broadcast(code string, action string, data interface{})
}

// BroadcastRenderer forwards every render call to the clients watching
// one session code.
type BroadcastRenderer struct {
	Code string
	Out  Broadcaster
}

func (r BroadcastRenderer) LoadBoard(s game.Snapshot) {
	r.Out.Broadcast(r.Code, "board", s)
}

func (r BroadcastRenderer) LoadUpcoming(pieces [2]game.PieceView) {
	r.Out.Broadcast(r.Code, "upcoming", pieces)
}

func (r BroadcastRenderer) LoadHud(h shared.Hud) {
	r.Out.Broadcast(r.Code, "hud", h)
}

func (r BroadcastRenderer) ShowHelp() {
	r.Out.Broadcast(r.Code, "help", HelpText)
}

func (r BroadcastRenderer) ShowHighScores(entries []highscore.Entry) {
	r.Out.Broadcast(r.Code, "highscores", shared.HighScores{Entries: entries})
}

type nopRenderer struct{}

func (nopRenderer) LoadBoard(game.Snapshot) {}
func (nopRenderer) LoadUpcoming([2]game.PieceView) {}
func (nopRenderer) LoadHud(shared.Hud) {}
func (nopRenderer) ShowHelp() {}
func (nopRenderer) ShowHighScores([]highscore.Entry) {}

// HelpText lists the commands a player can send.
var HelpText = []string{
	"start       start a match",
	"move_left   move the piece left",
	"move_right  move the piece right",
	"rotate_cw   rotate clockwise",
	"rotate_ccw  rotate counter-clockwise",
	"drop        drop the piece one row",
	"pause       pause or resume",
	"new_game    abandon the match and start over",
	"faster      raise the difficulty by one",
	"help        show this help",
	"highscores  show the high scores",
	"quit        leave the game",
}
