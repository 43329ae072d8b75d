package shared

import (
	"puyo-puyo/internal/game"
	"puyo-puyo/internal/highscore"
)

// Hud is the status line a renderer shows next to the board.
type Hud struct {
	Score      int  `json:"score"`
	Combo      int  `json:"combo"`
	Difficulty int  `json:"difficulty"`
	Started    bool `json:"started"`
	Paused     bool `json:"paused"`
	Lost       bool `json:"lost"`
}

// Frame is everything a client needs to draw one session.
type Frame struct {
	Code     string            `json:"code"`
	State    string            `json:"state"`
	Board    game.Snapshot     `json:"board"`
	Upcoming [2]game.PieceView `json:"upcoming"`
	Hud      Hud               `json:"hud"`
}

type HighScores struct {
	Entries []highscore.Entry `json:"entries"`
}
