package config

import (
	"os"
	"strconv"
	"sync"
)

type Config struct {
	HTTPAddr string `json:"httpAddr"`

	HighScoreBackend string `json:"highScoreBackend"`
	HighScorePath    string `json:"highScorePath"`
	PlayerName       string `json:"playerName"`

	TickBaseMS    int `json:"tickBaseMs"`
	TickStepMS    int `json:"tickStepMs"`
	TickFloorMS   int `json:"tickFloorMs"`
	SettleDelayMS int `json:"settleDelayMs"`
	RenderFPS     int `json:"renderFps"`

	// Seed 0 means seed from the clock.
	Seed int64 `json:"seed"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		HighScoreBackend: getenv("HIGHSCORE_BACKEND", "file"),
		HighScorePath:    getenv("HIGHSCORE_PATH", "PPMS.json"),
		PlayerName:       getenv("PLAYER_NAME", "Player"),
		TickBaseMS:       getenvInt("TICK_BASE_MS", 500),
		TickStepMS:       getenvInt("TICK_STEP_MS", 50),
		TickFloorMS:      getenvInt("TICK_FLOOR_MS", 50),
		SettleDelayMS:    getenvInt("SETTLE_DELAY_MS", 200),
		RenderFPS:        getenvInt("RENDER_FPS", 30),
		Seed:             getenvInt64("SEED", 0),
	}
}

var (
	once   sync.Once
	loaded Config
)

// Get returns the configuration loaded on first use.
func Get() *Config {
	once.Do(func() { loaded = Load() })
	return &loaded
}
