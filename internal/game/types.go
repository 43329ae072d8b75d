package game

const (
	Width  = 6
	Height = 15
	// HiddenRows is the spawn buffer above the visible playfield.
	HiddenRows = 3

	// MinGroup is the smallest connected group that gets cleared.
	MinGroup = 4
)

type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

type Sense int

const (
	Clockwise        Sense = 1
	CounterClockwise Sense = -1
)

// DropStatus is what a single gravity step reports back to the caller.
type DropStatus int

const (
	Active DropStatus = iota
	Settled
	Lost
)

func (s DropStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Settled:
		return "settled"
	case Lost:
		return "lost"
	}
	return "unknown"
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < Height && c.Col >= 0 && c.Col < Width
}

// index flattens a coordinate for set membership.
func (c Coord) index() int {
	return c.Row*Width + c.Col
}

// Visible reports whether the row is rendered to the player.
func Visible(row int) bool {
	return row >= HiddenRows && row < Height
}
