package match

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"puyo-puyo/internal/config"
	"puyo-puyo/internal/game"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/shared"
)

var (
	ErrQuit            = errors.New("quit")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrSessionNotFound = errors.New("session not found")
)

type State int

const (
	NotStarted State = iota
	Running
	Paused
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Lost:
		return "lost"
	}
	return "unknown"
}

type Command string

const (
	CmdStart      Command = "start"
	CmdMoveLeft   Command = "move_left"
	CmdMoveRight  Command = "move_right"
	CmdRotateCW   Command = "rotate_cw"
	CmdRotateCCW  Command = "rotate_ccw"
	CmdDrop       Command = "drop"
	CmdPause      Command = "pause"
	CmdNewGame    Command = "new_game"
	CmdFaster     Command = "faster"
	CmdHelp       Command = "help"
	CmdHighScores Command = "highscores"
	CmdQuit       Command = "quit"
)

// Commands lists every command in help order.
var Commands = []Command{
	CmdStart, CmdMoveLeft, CmdMoveRight, CmdRotateCW, CmdRotateCCW, CmdDrop,
	CmdPause, CmdNewGame, CmdFaster, CmdHelp, CmdHighScores, CmdQuit,
}

func ParseCommand(s string) (Command, error) {
	for _, c := range Commands {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCommand
}

type Options struct {
	Renderer Renderer
	// Scores may be nil, in which case nothing is loaded or saved.
	Scores highscore.Store
	Rand   *rand.Rand

	PlayerName string
	// NamePrompt is asked for the name to record after a qualifying
	// loss. Without it PlayerName is used.
	NamePrompt func(score int) string

	TickBase    time.Duration
	TickStep    time.Duration
	TickFloor   time.Duration
	SettleDelay time.Duration
}

// OptionsFromConfig fills the timing and naming fields from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Options{
		Rand:        rand.New(rand.NewSource(seed)),
		PlayerName:  cfg.PlayerName,
		TickBase:    time.Duration(cfg.TickBaseMS) * time.Millisecond,
		TickStep:    time.Duration(cfg.TickStepMS) * time.Millisecond,
		TickFloor:   time.Duration(cfg.TickFloorMS) * time.Millisecond,
		SettleDelay: time.Duration(cfg.SettleDelayMS) * time.Millisecond,
	}
}

// gravityTimer is one armed ticker. Stopping it is final; a new period
// means a new gravityTimer.
type gravityTimer struct {
	period time.Duration
	stop   chan struct{}
	once   sync.Once
}

func (t *gravityTimer) cancel() {
	t.once.Do(func() { close(t.stop) })
}

// Controller drives one Session: the gravity ticker and player commands
// both mutate the board, always under mu. A whole settle cycle runs
// under a single hold of mu, pacing delays included.
type Controller struct {
	mu      sync.Mutex
	opts    Options
	session *Session
	state   State
	timer   *gravityTimer
	closed  bool
	// hud of the match that was just lost, shown until the next start
	final shared.Hud
}

func NewController(opts Options) *Controller {
	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}
	if opts.TickBase <= 0 {
		opts.TickBase = 500 * time.Millisecond
	}
	if opts.TickFloor <= 0 {
		opts.TickFloor = time.Millisecond
	}

	c := &Controller{opts: opts, session: NewSession(opts.Rand)}
	c.mu.Lock()
	c.renderUpcomingLocked(c.session.Upcoming())
	c.renderHudLocked(false)
	c.mu.Unlock()
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Period is the current gravity interval.
func (c *Controller) Period() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.periodLocked()
}

// Armed reports whether a gravity ticker is running.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Frame captures everything a client draws.
func (c *Controller) Frame() shared.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	up := c.session.Upcoming()
	return shared.Frame{
		State:    c.state.String(),
		Board:    c.session.Board().Snapshot(),
		Upcoming: [2]game.PieceView{up[0].View(), up[1].View()},
		Hud:      c.frameHudLocked(),
	}
}

func (c *Controller) frameHudLocked() shared.Hud {
	if c.state == Lost {
		return c.final
	}
	return c.hudLocked(false)
}

// Session exposes the live session. Callers must not touch it while the
// controller runs.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Handle applies one player command. Only CmdQuit and unknown commands
// return an error; illegal moves are silently ignored.
func (c *Controller) Handle(cmd Command) error {
	switch cmd {
	case CmdQuit:
		c.Close()
		return ErrQuit
	case CmdHelp:
		c.mu.Lock()
		c.suspendLocked()
		c.mu.Unlock()
		c.opts.Renderer.ShowHelp()
		return nil
	case CmdHighScores:
		c.mu.Lock()
		c.suspendLocked()
		c.mu.Unlock()
		c.opts.Renderer.ShowHighScores(c.loadScores().Entries())
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	switch cmd {
	case CmdStart:
		c.startLocked()
	case CmdPause:
		switch c.state {
		case Running:
			c.suspendLocked()
		case Paused:
			c.state = Running
			c.session.Resume()
			c.armLocked()
			c.renderHudLocked(false)
		}
	case CmdNewGame:
		c.disarmLocked()
		c.state = NotStarted
		c.session = NewSession(c.opts.Rand)
		c.renderBoardLocked()
		c.renderUpcomingLocked(c.session.Upcoming())
		c.renderHudLocked(false)
	case CmdFaster:
		if c.state != Running && c.state != Paused {
			return nil
		}
		if c.session.IncreaseDifficulty() {
			log.Printf("difficulty raised to %d", c.session.Difficulty())
			if c.state == Running {
				c.armLocked()
			}
		}
		c.renderHudLocked(false)
	case CmdMoveLeft, CmdMoveRight, CmdRotateCW, CmdRotateCCW, CmdDrop:
		c.inputLocked(cmd)
	default:
		return ErrUnknownCommand
	}
	return nil
}

func (c *Controller) startLocked() {
	if c.state != NotStarted && c.state != Lost {
		return
	}
	c.state = Running
	c.session.Start()
	c.renderUpcomingLocked(c.session.AdvancePiece())
	c.renderBoardLocked()
	c.renderHudLocked(false)
	c.armLocked()
}

// suspendLocked pauses a running match; anything else is left alone.
func (c *Controller) suspendLocked() {
	if c.state != Running {
		return
	}
	c.disarmLocked()
	c.state = Paused
	c.session.Pause()
	c.renderHudLocked(false)
}

func (c *Controller) inputLocked(cmd Command) {
	piece := c.session.Current()
	if c.state != Running || piece == nil || piece.IsBroken() {
		return
	}
	b := c.session.Board()
	switch cmd {
	case CmdMoveLeft:
		b.MoveHorizontal(game.Left, piece)
	case CmdMoveRight:
		b.MoveHorizontal(game.Right, piece)
	case CmdRotateCW:
		b.Rotate(game.Clockwise, piece)
	case CmdRotateCCW:
		b.Rotate(game.CounterClockwise, piece)
	case CmdDrop:
		// settling or losing is picked up by the next tick
		b.DropOneStep(piece)
	}
	c.renderBoardLocked()
}

// Tick runs one gravity step. The ticker calls it; tests may too.
func (c *Controller) Tick() {
	c.mu.Lock()
	lost, score := c.stepLocked()
	c.mu.Unlock()
	if lost {
		c.recordScore(score)
	}
}

func (c *Controller) tick(t *gravityTimer) {
	c.mu.Lock()
	if c.timer != t {
		// cancelled while waiting for the lock
		c.mu.Unlock()
		return
	}
	lost, score := c.stepLocked()
	c.mu.Unlock()
	if lost {
		c.recordScore(score)
	}
}

func (c *Controller) stepLocked() (lost bool, score int) {
	if c.closed || c.state != Running || c.session.Current() == nil {
		return false, 0
	}
	s := c.session
	switch s.Board().DropOneStep(s.Current()) {
	case game.Active:
		c.renderBoardLocked()
	case game.Settled:
		c.renderBoardLocked()
		c.pace()
		c.settleLocked()
	case game.Lost:
		score = s.Score()
		log.Printf("match lost with score %d", score)
		c.disarmLocked()
		c.state = Lost
		c.final = c.hudLocked(true)
		c.opts.Renderer.LoadHud(c.final)

		c.session = NewSession(c.opts.Rand)
		c.renderUpcomingLocked(c.session.Upcoming())
		return true, score
	}
	return false, 0
}

// settleLocked clears groups until none are left, letting gravity run
// between rounds, then brings in the next piece.
func (c *Controller) settleLocked() {
	s := c.session
	b := s.Board()
	for {
		points := b.ClearBlocks()
		if points == 0 {
			break
		}
		s.AddCombo()
		if s.AddScore(points) {
			log.Printf("difficulty raised to %d", s.Difficulty())
			c.armLocked()
		}
		c.renderHudLocked(false)
		c.renderBoardLocked()
		c.pace()

		b.CollapseGravity()
		c.renderBoardLocked()
		c.pace()
	}
	s.ResetCombo()
	c.renderHudLocked(false)
	c.renderUpcomingLocked(s.AdvancePiece())
	c.renderBoardLocked()
}

func (c *Controller) pace() {
	if c.opts.SettleDelay > 0 {
		time.Sleep(c.opts.SettleDelay)
	}
}

func (c *Controller) periodLocked() time.Duration {
	p := c.opts.TickBase - time.Duration(c.session.Difficulty())*c.opts.TickStep
	if p < c.opts.TickFloor {
		p = c.opts.TickFloor
	}
	return p
}

// armLocked replaces any running ticker with one at the current period.
func (c *Controller) armLocked() {
	c.disarmLocked()
	t := &gravityTimer{period: c.periodLocked(), stop: make(chan struct{})}
	c.timer = t

	go func() {
		ticker := time.NewTicker(t.period)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				c.tick(t)
			}
		}
	}()
}

func (c *Controller) disarmLocked() {
	if c.timer != nil {
		c.timer.cancel()
		c.timer = nil
	}
}

// Close stops the ticker for good. Later commands are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disarmLocked()
	c.closed = true
}

// recordScore runs outside the board lock: storage may be slow and its
// failures only cost the player a high score entry.
func (c *Controller) recordScore(score int) {
	table := c.loadScores()
	if !table.Qualifies(score) {
		return
	}
	name := c.opts.PlayerName
	if c.opts.NamePrompt != nil {
		if n := c.opts.NamePrompt(score); n != "" {
			name = n
		}
	}
	table.Add(score, name)
	c.opts.Renderer.ShowHighScores(table.Entries())

	if c.opts.Scores == nil {
		return
	}
	if err := c.opts.Scores.Save(table); err != nil {
		log.Printf("save high scores: %v", err)
	}
}

func (c *Controller) loadScores() *highscore.Table {
	if c.opts.Scores == nil {
		return highscore.NewTable()
	}
	table, err := c.opts.Scores.Load()
	if err != nil {
		log.Printf("load high scores: %v", err)
		return highscore.NewTable()
	}
	return table
}

func (c *Controller) hudLocked(lost bool) shared.Hud {
	s := c.session
	return shared.Hud{
		Score:      s.Score(),
		Combo:      s.Combo(),
		Difficulty: s.Difficulty(),
		Started:    s.Started(),
		Paused:     s.Paused(),
		Lost:       lost,
	}
}

func (c *Controller) renderHudLocked(lost bool) {
	c.opts.Renderer.LoadHud(c.hudLocked(lost))
}

func (c *Controller) renderBoardLocked() {
	c.opts.Renderer.LoadBoard(c.session.Board().Snapshot())
}

func (c *Controller) renderUpcomingLocked(q [2]*game.Piece) {
	c.opts.Renderer.LoadUpcoming([2]game.PieceView{q[0].View(), q[1].View()})
}
