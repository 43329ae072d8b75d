package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "puyo-puyo/internal/api/http"
	"puyo-puyo/internal/api/ws"
	"puyo-puyo/internal/config"
	"puyo-puyo/internal/highscore"
	"puyo-puyo/internal/match"
	"puyo-puyo/internal/store"

	// swagger packages
	_ "puyo-puyo/docs"

	"github.com/gin-gonic/gin"
)

// @title Puyo Puyo API
// @version 1.0
// @description Single-player falling-block matches driven over HTTP and WebSocket (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Get()

	scores, err := highscore.Open(cfg.HighScoreBackend, cfg.HighScorePath)
	if err != nil {
		log.Printf("open %s high score store: %v, falling back to file", cfg.HighScoreBackend, err)
		scores = highscore.NewFileStore(cfg.HighScorePath)
	}

	mem := store.NewMemoryStore()
	m := match.NewManager(mem, *cfg, scores, nil)
	hub := ws.NewHub(m)
	m.SetHub(hub)
	r := httpapi.NewRouter(m, hub)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	// stop the tickers before the store goes away so no loss is recorded late
	m.Shutdown()
	if err := highscore.Close(scores); err != nil {
		log.Printf("close high score store: %v", err)
	}
}
