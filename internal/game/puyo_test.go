package game_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puyo-puyo/internal/game"
)

func TestPuyoEqualityIsByColor(t *testing.T) {
	a := game.NewPuyo(game.ColorRed)
	b := game.NewPuyo(game.ColorRed)
	c := game.NewPuyo(game.ColorGreen)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var missing *game.Puyo
	assert.False(t, missing.Equal(a))
}

func TestPuyoLinks(t *testing.T) {
	p := game.NewPuyo(game.ColorYellow)
	assert.False(t, p.Link(game.LinkUp))
	assert.False(t, p.Link(game.LinkRight))

	p.SetLink(game.LinkRight, true)
	assert.True(t, p.Link(game.LinkRight))
	assert.False(t, p.Link(game.LinkUp))

	p.SetLink(game.LinkRight, false)
	assert.False(t, p.Link(game.LinkRight))
}

func TestRandomPuyoIsSeeded(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		assert.Equal(t, game.RandomPuyo(r1).Color(), game.RandomPuyo(r2).Color())
	}
}

func TestRandomPuyoUsesWholePalette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[game.Color]bool{}
	for i := 0; i < 200; i++ {
		c := game.RandomPuyo(rng).Color()
		assert.Contains(t, game.Palette, c)
		seen[c] = true
	}
	assert.Len(t, seen, len(game.Palette))
}

func TestColorJSON(t *testing.T) {
	out, err := json.Marshal(game.ColorPurple)
	require.NoError(t, err)
	assert.JSONEq(t, `"purple"`, string(out))

	var c game.Color
	require.NoError(t, json.Unmarshal([]byte(`"green"`), &c))
	assert.Equal(t, game.ColorGreen, c)

	assert.Error(t, json.Unmarshal([]byte(`"teal"`), &c))
}
