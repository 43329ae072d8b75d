package match

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"puyo-puyo/internal/config"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/shared"
)

type Store interface {
	GetSession(code string) (*Controller, bool)
	SaveSession(code string, c *Controller)
	DeleteSession(code string) (*Controller, bool)
	Codes() []string
}

// Manager owns the live sessions of a server. Each session is an
// independent single-player match whose renders go out through the hub
// under the session code.
type Manager struct {
	store  Store
	cfg    config.Config
	scores highscore.Store
	hub    Broadcaster
}

func NewManager(s Store, cfg config.Config, scores highscore.Store, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, scores: scores, hub: hub}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// Broadcast forwards to the hub once one is set.
func (m *Manager) Broadcast(code string, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

func (m *Manager) CreateSession(playerName string) (string, *Controller) {
	if playerName == "" {
		playerName = m.cfg.PlayerName
	}
	code := uuid.NewString()

	opts := OptionsFromConfig(m.cfg)
	opts.PlayerName = playerName
	opts.Scores = m.scores
	opts.Renderer = BroadcastRenderer{Code: code, Out: m}

	c := NewController(opts)
	m.store.SaveSession(code, c)
	log.Printf("session %s created for %s", code, playerName)
	return code, c
}

func (m *Manager) Get(code string) (*Controller, error) {
	c, ok := m.store.GetSession(code)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (m *Manager) Frame(code string) (shared.Frame, error) {
	c, err := m.Get(code)
	if err != nil {
		return shared.Frame{}, err
	}
	f := c.Frame()
	f.Code = code
	return f, nil
}

// Command applies a named command and returns the resulting frame. A
// quit command ends the session.
func (m *Manager) Command(code string, name string) (shared.Frame, error) {
	c, err := m.Get(code)
	if err != nil {
		return shared.Frame{}, err
	}
	cmd, err := ParseCommand(name)
	if err != nil {
		log.Printf("session %s: unknown command %q", code, name)
		return shared.Frame{}, err
	}

	err = c.Handle(cmd)
	f := c.Frame()
	f.Code = code
	if errors.Is(err, ErrQuit) {
		m.store.DeleteSession(code)
		log.Printf("session %s quit", code)
		return f, nil
	}
	return f, err
}

func (m *Manager) Close(code string) error {
	c, ok := m.store.DeleteSession(code)
	if !ok {
		return ErrSessionNotFound
	}
	c.Close()
	log.Printf("session %s closed", code)
	return nil
}

// Shutdown closes every live session.
func (m *Manager) Shutdown() {
	for _, code := range m.store.Codes() {
		if err := m.Close(code); err != nil {
			log.Printf("close session %s: %v", code, err)
		}
	}
}

// HighScores loads the persisted table; failures give an empty list.
func (m *Manager) HighScores() []highscore.Entry {
	if m.scores == nil {
		return []highscore.Entry{}
	}
	t, err := m.scores.Load()
	if err != nil {
		log.Printf("load high scores: %v", err)
		return []highscore.Entry{}
	}
	return t.Entries()
}

func (m *Manager) Config() config.Config {
	return m.cfg
}
