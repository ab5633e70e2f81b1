package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

// Coordinates are 1-based: (1, 1) is the top left cell of the board.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%d/%d", c.X, c.Y)
}

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return OrientationHorizontal, nil
	case "v", "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, cerr.ErrInvalidOrientation(s)
	}
}

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// Next returns the coordinates one step further along the orientation.
func (o Orientation) Next(c Coordinates) Coordinates {
	if o == OrientationVertical {
		return Coordinates{X: c.X, Y: c.Y + 1}
	}
	return Coordinates{X: c.X + 1, Y: c.Y}
}

// PlacementRequest is one attempt at placing a ship: the anchor (head)
// of the ship and the direction the rest of it extends in.
type PlacementRequest struct {
	Anchor      Coordinates
	Orientation Orientation
}

func NewPlacementRequest(x, y int, orientation Orientation) PlacementRequest {
	return PlacementRequest{Anchor: NewCoordinates(x, y), Orientation: orientation}
}

// Expand returns the length coordinates the request would cover,
// starting with the anchor. It does not look at any board.
func (pr PlacementRequest) Expand(length int) []Coordinates {
	if length <= 0 {
		return []Coordinates{}
	}

	coords := make([]Coordinates, 0, length)
	current := pr.Anchor
	for i := 0; i < length; i++ {
		coords = append(coords, current)
		current = pr.Orientation.Next(current)
	}
	return coords
}
