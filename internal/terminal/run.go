package terminal

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"puyo-puyo/internal/match"
)

// Commander receives the commands bound to keys.
type Commander interface {
	Handle(cmd match.Command) error
}

// Run feeds key events to c until the quit command or until events is
// closed. prompt may be nil.
func Run(events <-chan tcell.Event, r *Renderer, c Commander, prompt *NamePrompt) error {
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			r.Invalidate()
		case *tcell.EventKey:
			if dispatch(ev.Key(), ev.Rune(), r, c, prompt) {
				return nil
			}
		}
	}
	return nil
}

// dispatch handles one key and reports whether the game should end.
// While prompt is asking for a name every key goes to it. Keys without a
// binding close an open overlay.
func dispatch(key tcell.Key, ch rune, r *Renderer, c Commander, prompt *NamePrompt) bool {
	if prompt != nil && prompt.Key(key, ch) {
		return false
	}
	cmd, ok := KeyCommand(key, ch)
	if !ok {
		r.Dismiss()
		return false
	}
	err := c.Handle(cmd)
	if errors.Is(err, match.ErrQuit) {
		return true
	}
	if err != nil {
		log.Printf("command %s: %v", cmd, err)
	}
	return false
}

// Poll pumps screen events into a channel that closes once the screen
// is finalized.
func Poll(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}
