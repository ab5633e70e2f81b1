package battleship

import (
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type ShipKind uint8

const (
	ShipKindDestroyer ShipKind = iota
	ShipKindSubmarine
	ShipKindCruiser
	ShipKindBattleship
	ShipKindAircraftCarrier
)

var shipKindLengths = map[ShipKind]int{
	ShipKindDestroyer:       2,
	ShipKindSubmarine:       3,
	ShipKindCruiser:         4,
	ShipKindBattleship:      5,
	ShipKindAircraftCarrier: 6,
}

var shipKindNames = map[ShipKind]string{
	ShipKindDestroyer:       "Destroyer",
	ShipKindSubmarine:       "Submarine",
	ShipKindCruiser:         "Cruiser",
	ShipKindBattleship:      "Battleship",
	ShipKindAircraftCarrier: "Aircraft Carrier",
}

// Placement order of the fleet, largest ship first.
var FleetOrder = []ShipKind{
	ShipKindAircraftCarrier,
	ShipKindBattleship,
	ShipKindCruiser,
	ShipKindSubmarine,
	ShipKindDestroyer,
}

func (k ShipKind) Length() int {
	return shipKindLengths[k]
}

func (k ShipKind) Name() string {
	return shipKindNames[k]
}

func (k ShipKind) String() string {
	return k.Name()
}

// ShipHandle is the index of a ship in its fleet. Board cells
// store handles instead of pointers to ships.
type ShipHandle int

const NoShip ShipHandle = -1

type Ship struct {
	kind   ShipKind
	health int
	handle ShipHandle
	fleet  *Fleet
}

// NewShip returns a ship at full health. It has no handle
// until it is added to a fleet.
func NewShip(kind ShipKind) *Ship {
	return &Ship{
		kind:   kind,
		health: kind.Length(),
		handle: NoShip,
	}
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

func (sh *Ship) Length() int {
	return sh.kind.Length()
}

func (sh *Ship) Name() string {
	return sh.kind.Name()
}

// Health is only read during setup; nothing decrements it yet.
func (sh *Ship) Health() int {
	return sh.health
}

func (sh *Ship) Handle() ShipHandle {
	return sh.handle
}

type Fleet struct {
	ships []*Ship
}

func NewFleet() *Fleet {
	fleet := &Fleet{ships: make([]*Ship, 0, len(FleetOrder))}
	for _, kind := range FleetOrder {
		fleet.Add(NewShip(kind))
	}
	return fleet
}

// Add appends ship to the fleet and assigns its handle.
func (f *Fleet) Add(ship *Ship) ShipHandle {
	ship.handle = ShipHandle(len(f.ships))
	ship.fleet = f
	f.ships = append(f.ships, ship)
	return ship.handle
}

func (f *Fleet) Ship(handle ShipHandle) (*Ship, error) {
	if handle < 0 || int(handle) >= len(f.ships) {
		return nil, cerr.ErrShipHandleNotInFleet(int(handle))
	}
	return f.ships[handle], nil
}

func (f *Fleet) Ships() []*Ship {
	return f.ships
}

func (f *Fleet) Len() int {
	return len(f.ships)
}

// TotalLength is the number of cells the whole fleet occupies once placed.
func (f *Fleet) TotalLength() int {
	total := 0
	for _, ship := range f.ships {
		total += ship.Length()
	}
	return total
}
