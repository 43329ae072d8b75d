package main

import (
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"puyo-puyo/internal/config"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/match"
	"puyo-puyo/internal/terminal"
)

func main() {
	cfg := config.Get()

	// the screen owns stdout while the game runs
	if f, err := os.OpenFile("puyo-puyo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	scores, err := highscore.Open(cfg.HighScoreBackend, cfg.HighScorePath)
	if err != nil {
		log.Printf("open %s high score store: %v, falling back to file", cfg.HighScoreBackend, err)
		scores = highscore.NewFileStore(cfg.HighScorePath)
	}
	defer highscore.Close(scores)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	r := terminal.NewRenderer(screen)
	prompt := terminal.NewNamePrompt(r)
	opts := match.OptionsFromConfig(*cfg)
	opts.Renderer = r
	opts.Scores = scores
	opts.NamePrompt = prompt.Ask
	c := match.NewController(opts)

	done := make(chan struct{})
	go r.Loop(cfg.RenderFPS, done)

	if err := terminal.Run(terminal.Poll(screen), r, c, prompt); err != nil {
		log.Printf("run: %v", err)
	}
	c.Close()
	close(done)
	screen.Fini()
}
