package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorPurple
)

// Palette lists the colors a random Puyo can take.
var Palette = []Color{ColorRed, ColorGreen, ColorYellow, ColorPurple}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	}
	return "none"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for _, candidate := range append([]Color{ColorNone}, Palette...) {
		if candidate.String() == string(text) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("game: unknown color %q", text)
}

type Side int

const (
	LinkUp Side = iota
	LinkRight
)

var puyoSeq atomic.Uint64

// Puyo is a single colored cell. Two puyos are Equal when their colors
// match; identity is the pointer (or ID) and is only used to tell which
// piece a cell belongs to.
type Puyo struct {
	id    uint64
	color Color
	links [2]bool
}

func NewPuyo(color Color) *Puyo {
	return &Puyo{id: puyoSeq.Add(1), color: color}
}

// RandomPuyo picks a color uniformly from the palette.
func RandomPuyo(rng *rand.Rand) *Puyo {
	return NewPuyo(Palette[rng.Intn(len(Palette))])
}

func (p *Puyo) ID() uint64 { return p.id }
func (p *Puyo) Color() Color { return p.color }

func (p *Puyo) Link(side Side) bool {
	return p.links[side]
}

// SetLink only affects rendering; gameplay never reads links.
func (p *Puyo) SetLink(side Side, linked bool) {
	p.links[side] = linked
}

// Equal compares by color. A nil on either side is never equal.
func (p *Puyo) Equal(o *Puyo) bool {
	if p == nil || o == nil {
		return false
	}
	return p.color == o.color
}

func (p *Puyo) String() string {
	if p == nil {
		return "."
	}
	return p.color.String()[:1]
}
