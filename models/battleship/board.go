package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	DefaultBoardWidth  int = 10
	DefaultBoardHeight int = 10

	MarkerOccupied = "S"
	MarkerEmpty    = "~"
)

type BoardCell struct {
	Ship ShipHandle
}

func (bc BoardCell) IsEmpty() bool {
	return bc.Ship == NoShip
}

// Board is a width x height grid stored row by row. It never
// resizes and its cells are never reallocated after NewBoard.
// Handles are only unique within a fleet, so a board holds the ships
// of a single fleet: the first placed ship binds it.
type Board struct {
	width  int
	height int
	cells  []BoardCell
	placed map[ShipHandle][]Coordinates
	fleet  *Fleet
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, cerr.ErrInvalidBoardSize(width, height)
	}

	cells := make([]BoardCell, width*height)
	for i := range cells {
		cells[i] = BoardCell{Ship: NoShip}
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
		placed: make(map[ShipHandle][]Coordinates),
	}, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// CoordinateToIndex maps 1-based coordinates to the flat cell index.
// It does not check bounds; see InBounds.
func (b *Board) CoordinateToIndex(c Coordinates) int {
	return (c.Y-1)*b.width + (c.X - 1)
}

// IndexToCoordinate is the inverse of CoordinateToIndex.
func (b *Board) IndexToCoordinate(index int) Coordinates {
	return Coordinates{X: index%b.width + 1, Y: index/b.width + 1}
}

func (b *Board) InBounds(c Coordinates) bool {
	return c.X >= 1 && c.X <= b.width && c.Y >= 1 && c.Y <= b.height
}

func (b *Board) CellAt(c Coordinates) (BoardCell, error) {
	if !b.InBounds(c) {
		return BoardCell{Ship: NoShip}, cerr.ErrCoordinatesOutOfBoardBound(c.X, c.Y)
	}
	return b.cells[b.CoordinateToIndex(c)], nil
}

func (b *Board) IsPlaced(handle ShipHandle) bool {
	_, prs := b.placed[handle]
	return prs
}

// ShipCoordinates returns the cells a placed ship occupies, in placement order.
func (b *Board) ShipCoordinates(handle ShipHandle) []Coordinates {
	coords, prs := b.placed[handle]
	if !prs {
		return nil
	}
	out := make([]Coordinates, len(coords))
	copy(out, coords)
	return out
}

// PlaceShip validates every cell of the expanded request before
// writing any of them, so a rejected placement leaves the board as it was.
func (b *Board) PlaceShip(req PlacementRequest, ship *Ship) error {
	if ship == nil || ship.Handle() == NoShip {
		return cerr.ErrShipHandleNotInFleet(int(NoShip))
	}
	if b.fleet != nil && ship.fleet != b.fleet {
		return cerr.ErrShipFromOtherFleet(ship.Name())
	}
	if b.IsPlaced(ship.Handle()) {
		return cerr.ErrShipPlacedBefore(ship.Name())
	}

	coords := req.Expand(ship.Length())
	for _, c := range coords {
		cell, err := b.CellAt(c)
		if err != nil {
			return err
		}
		if !cell.IsEmpty() {
			return cerr.ErrCoordinatesOverlap(c.X, c.Y)
		}
	}

	for _, c := range coords {
		b.cells[b.CoordinateToIndex(c)].Ship = ship.Handle()
	}
	b.placed[ship.Handle()] = coords
	b.fleet = ship.fleet

	return nil
}

func (b *Board) OccupiedCount() int {
	count := 0
	for _, cell := range b.cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Render returns a header of column numbers followed by one line per
// row. Every column is two characters wide.
func (b *Board) Render() string {
	var builder strings.Builder
	builder.Grow((b.width + 1) * 2 * (b.height + 1))

	builder.WriteString("  ")
	for x := 1; x <= b.width; x++ {
		fmt.Fprintf(&builder, "%2d", x)
	}
	builder.WriteByte('\n')

	for y := 1; y <= b.height; y++ {
		fmt.Fprintf(&builder, "%2d", y)
		for x := 1; x <= b.width; x++ {
			marker := MarkerEmpty
			if !b.cells[b.CoordinateToIndex(Coordinates{X: x, Y: y})].IsEmpty() {
				marker = MarkerOccupied
			}
			builder.WriteString(" " + marker)
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func (b *Board) String() string {
	return b.Render()
}
