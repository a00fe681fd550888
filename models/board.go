package models

// Coord is a cell on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnakeCustomizations are cosmetic fields a bot may use for display.
type SnakeCustomizations struct {
	Color string `json:"color,omitempty"`
	Head  string `json:"head,omitempty"`
	Tail  string `json:"tail,omitempty"`
}

// Snake is one battlesnake on the board.
type Snake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Coord `json:"body"`
	Head   Coord   `json:"head"`
	Length int     `json:"length"`

	Latency        string               `json:"latency,omitempty"`
	Shout          string               `json:"shout,omitempty"`
	Squad          string               `json:"squad,omitempty"`
	Customizations *SnakeCustomizations `json:"customizations,omitempty"`
}

// Board is a frozen board snapshot.
type Board struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Food    []Coord `json:"food"`
	Hazards []Coord `json:"hazards"`
	Snakes  []Snake `json:"snakes"`
}

// Normalized returns a copy of the board with nil slices replaced by empty
// ones, so that it always serialises as JSON arrays.
func (b Board) Normalized() Board {
	if b.Food == nil {
		b.Food = []Coord{}
	}
	if b.Hazards == nil {
		b.Hazards = []Coord{}
	}
	if b.Snakes == nil {
		b.Snakes = []Snake{}
	}
	for i := range b.Snakes {
		if b.Snakes[i].Body == nil {
			b.Snakes[i].Body = []Coord{}
		}
	}
	return b
}

// Ruleset describes the rules the bot is asked to play under.
type Ruleset struct {
	Name     string         `json:"name,omitempty"`
	Version  string         `json:"version,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// Game is the optional per-test game configuration.
type Game struct {
	ID      string   `json:"id,omitempty"`
	Ruleset *Ruleset `json:"ruleset,omitempty"`
	Map     string   `json:"map,omitempty"`
	Timeout int      `json:"timeout,omitempty"`
	Source  string   `json:"source,omitempty"`
}

// Move names understood by bots.
const (
	MoveUp    = "up"
	MoveDown  = "down"
	MoveLeft  = "left"
	MoveRight = "right"
)

// Moves lists every legal move name.
var Moves = []string{MoveUp, MoveDown, MoveLeft, MoveRight}
