package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

func TestShipKinds(t *testing.T) {
	tests := []struct {
		kind   ShipKind
		length int
		name   string
	}{
		{kind: ShipKindDestroyer, length: 2, name: "Destroyer"},
		{kind: ShipKindSubmarine, length: 3, name: "Submarine"},
		{kind: ShipKindCruiser, length: 4, name: "Cruiser"},
		{kind: ShipKindBattleship, length: 5, name: "Battleship"},
		{kind: ShipKindAircraftCarrier, length: 6, name: "Aircraft Carrier"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.kind.Length() != test.length {
				t.Fatalf("expected length: %d\tgot: %d", test.length, test.kind.Length())
			}
			if test.kind.Name() != test.name {
				t.Fatalf("expected name: %s\tgot: %s", test.name, test.kind.Name())
			}

			ship := NewShip(test.kind)
			if ship.Health() != test.length {
				t.Fatalf("expected full health: %d\tgot: %d", test.length, ship.Health())
			}
			if ship.Handle() != NoShip {
				t.Fatalf("expected new ship without handle, got %d", ship.Handle())
			}
		})
	}
}

func TestNewFleet(t *testing.T) {
	fleet := NewFleet()

	if fleet.Len() != len(FleetOrder) {
		t.Fatalf("expected ships: %d\tgot: %d", len(FleetOrder), fleet.Len())
	}
	if fleet.TotalLength() != 20 {
		t.Fatalf("expected total length: %d\tgot: %d", 20, fleet.TotalLength())
	}

	prevLength := 1 << 10
	for i, ship := range fleet.Ships() {
		if ship.Handle() != ShipHandle(i) {
			t.Fatalf("expected handle: %d\tgot: %d", i, ship.Handle())
		}
		if ship.Kind() != FleetOrder[i] {
			t.Fatalf("expected kind: %s\tgot: %s", FleetOrder[i], ship.Kind())
		}
		if ship.Length() >= prevLength {
			t.Fatalf("fleet is not ordered largest first at %s", ship.Name())
		}
		prevLength = ship.Length()

		found, err := fleet.Ship(ship.Handle())
		if err != nil {
			t.Fatal(err)
		}
		if found != ship {
			t.Fatalf("handle %d resolved to a different ship", ship.Handle())
		}
	}

	for _, handle := range []ShipHandle{NoShip, ShipHandle(fleet.Len())} {
		if _, err := fleet.Ship(handle); !errors.Is(err, cerr.ErrUnknownShip) {
			t.Fatalf("expected: %v\tgot: %v", cerr.ErrUnknownShip, err)
		}
	}
}
