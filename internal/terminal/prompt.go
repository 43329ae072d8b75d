package terminal

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// MaxNameLen caps the length of a typed high score name.
const MaxNameLen = 12

// NamePrompt asks the player for a high score name. Ask runs on the
// controller's goroutine and blocks; Key is fed from the event loop.
type NamePrompt struct {
	r *Renderer

	mu    sync.Mutex
	reply chan string
	score int
	buf   []rune
}

func NewNamePrompt(r *Renderer) *NamePrompt {
	return &NamePrompt{r: r}
}

// Ask shows the entry box and waits for the player to submit. An empty
// answer means the configured default name.
func (p *NamePrompt) Ask(score int) string {
	reply := make(chan string, 1)
	p.mu.Lock()
	p.reply = reply
	p.score = score
	p.buf = p.buf[:0]
	p.mu.Unlock()

	p.r.showNameEntry(score, "")
	return <-reply
}

// Active reports whether a name is being typed.
func (p *NamePrompt) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reply != nil
}

// Key handles one key press. It reports false when no prompt is open and
// the key should go to the game.
func (p *NamePrompt) Key(key tcell.Key, r rune) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reply == nil {
		return false
	}

	switch key {
	case tcell.KeyEnter:
		p.finishLocked(strings.TrimSpace(string(p.buf)))
		return true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.finishLocked("")
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case tcell.KeyRune:
		if len(p.buf) < MaxNameLen {
			p.buf = append(p.buf, r)
		}
	}
	p.r.showNameEntry(p.score, string(p.buf))
	return true
}

func (p *NamePrompt) finishLocked(name string) {
	p.reply <- name
	p.reply = nil
	p.r.hideNameEntry()
}
