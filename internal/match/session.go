package match

import (
	"math/rand"

	"puyo-puyo/internal/game"
)

// MaxDifficulty is the highest difficulty level a session can reach.
const MaxDifficulty = 9

// Session is one match: the board, the falling piece, the two queued
// pieces and the score bookkeeping. It is not safe for concurrent use;
// the Controller serializes access.
type Session struct {
	board   *game.Board
	next    func() *game.Piece
	current *game.Piece
	queue   [2]*game.Piece

	score      int
	combo      int
	difficulty int
	thresholds [MaxDifficulty]int

	started bool
	paused  bool
}

func NewSession(rng *rand.Rand) *Session {
	s := &Session{
		board: game.NewBoard(),
		next:  func() *game.Piece { return game.NewPiece(rng) },
	}
	s.queue[0] = s.next()
	s.queue[1] = s.next()

	s.thresholds[0] = 1000
	for i := 1; i < MaxDifficulty; i++ {
		s.thresholds[i] = s.thresholds[i-1] + 1000*(10+2*i)/10
	}
	return s
}

func (s *Session) Board() *game.Board { return s.board }
func (s *Session) Current() *game.Piece { return s.current }
func (s *Session) Score() int { return s.score }
func (s *Session) Combo() int { return s.combo }
func (s *Session) Difficulty() int { return s.difficulty }
func (s *Session) Started() bool { return s.started }
func (s *Session) Paused() bool { return s.paused }

// Thresholds returns the cumulative score needed for each level.
func (s *Session) Thresholds() [MaxDifficulty]int { return s.thresholds }

func (s *Session) Start() {
	s.started = true
	s.paused = false
}

func (s *Session) Pause() { s.paused = true }
func (s *Session) Resume() { s.paused = false }

func (s *Session) AddCombo() { s.combo++ }
func (s *Session) ResetCombo() { s.combo = 0 }

// AddScore credits points scaled by the combo and difficulty, then
// re-derives the difficulty from the new total. It reports whether the
// difficulty moved so the caller can retime gravity. The level never
// goes down, even after a manual increase.
func (s *Session) AddScore(points int) bool {
	s.score += points * s.combo * (10 + s.difficulty) / 10

	level := 0
	for level < MaxDifficulty && s.thresholds[level] <= s.score {
		level++
	}
	if level <= s.difficulty {
		return false
	}
	s.difficulty = level
	return true
}

// IncreaseDifficulty bumps the level by one, up to MaxDifficulty.
func (s *Session) IncreaseDifficulty() bool {
	if s.difficulty >= MaxDifficulty {
		return false
	}
	s.difficulty++
	return true
}

// AdvancePiece makes the head of the queue the falling piece, puts it on
// the board and refills the queue. It returns the new queue.
func (s *Session) AdvancePiece() [2]*game.Piece {
	s.current = s.queue[0]
	s.board.AddPiece(s.current)
	s.queue[0] = s.queue[1]
	s.queue[1] = s.next()
	return s.queue
}

func (s *Session) Upcoming() [2]*game.Piece { return s.queue }
