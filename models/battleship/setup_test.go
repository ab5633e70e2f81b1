package battleship

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type scriptedSource struct {
	reqs []PlacementRequest
	next int
}

func (s *scriptedSource) NextPlacement(_ context.Context, _ *Ship) (PlacementRequest, error) {
	if s.next >= len(s.reqs) {
		return PlacementRequest{}, io.EOF
	}
	req := s.reqs[s.next]
	s.next++
	return req, nil
}

type recordingSink struct {
	requested []string
	rejected  []error
	placed    []string
	completed string
}

func (r *recordingSink) ShipRequested(ship *Ship, _ string) error {
	r.requested = append(r.requested, ship.Name())
	return nil
}

func (r *recordingSink) PlacementRejected(_ *Ship, _ PlacementRequest, reason error) error {
	r.rejected = append(r.rejected, reason)
	return nil
}

func (r *recordingSink) ShipPlaced(ship *Ship, coords []Coordinates) error {
	if len(coords) != ship.Length() {
		return errors.New("placed coordinates do not match ship length")
	}
	r.placed = append(r.placed, ship.Name())
	return nil
}

func (r *recordingSink) SetupCompleted(boardView string) error {
	r.completed = boardView
	return nil
}

func TestSetupOffer(t *testing.T) {
	setup, err := NewSetup(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	if setup.State() != SetupStateAwaitingPlacement {
		t.Fatalf("expected state: %s\tgot: %s", SetupStateAwaitingPlacement, setup.State())
	}
	if setup.CurrentShip().Kind() != ShipKindAircraftCarrier {
		t.Fatalf("expected first ship: %s\tgot: %s", ShipKindAircraftCarrier, setup.CurrentShip().Kind())
	}

	// rejected: stays on the same ship
	if _, err := setup.Offer(NewPlacementRequest(6, 1, OrientationHorizontal)); !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected: %v\tgot: %v", cerr.ErrOutOfBounds, err)
	}
	if setup.CurrentShip().Kind() != ShipKindAircraftCarrier {
		t.Fatal("setup advanced after a rejected placement")
	}

	for i := range FleetOrder {
		ship, err := setup.Offer(NewPlacementRequest(1, i+1, OrientationHorizontal))
		if err != nil {
			t.Fatal(err)
		}
		if ship.Kind() != FleetOrder[i] {
			t.Fatalf("expected placed kind: %s\tgot: %s", FleetOrder[i], ship.Kind())
		}
	}

	if !setup.IsComplete() {
		t.Fatal("expected setup to be complete")
	}
	if setup.CurrentShip() != nil {
		t.Fatal("expected no current ship after completion")
	}
	if _, err := setup.Offer(NewPlacementRequest(1, 9, OrientationHorizontal)); !errors.Is(err, cerr.ErrSetupComplete) {
		t.Fatalf("expected: %v\tgot: %v", cerr.ErrSetupComplete, err)
	}
}

func TestSetupRun(t *testing.T) {
	setup, err := NewSetup(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	source := &scriptedSource{reqs: []PlacementRequest{
		NewPlacementRequest(1, 1, OrientationHorizontal),  // aircraft carrier
		NewPlacementRequest(1, 1, OrientationVertical),    // battleship overlaps
		NewPlacementRequest(10, 1, OrientationHorizontal), // battleship off the edge
		NewPlacementRequest(1, 2, OrientationHorizontal),  // battleship
		NewPlacementRequest(1, 3, OrientationHorizontal),  // cruiser
		NewPlacementRequest(10, 5, OrientationVertical),   // submarine
		NewPlacementRequest(5, 9, OrientationHorizontal),  // destroyer
	}}
	sink := &recordingSink{}

	if err := setup.Run(context.Background(), source, sink); err != nil {
		t.Fatal(err)
	}

	if len(sink.requested) != len(FleetOrder) || len(sink.placed) != len(FleetOrder) {
		t.Fatalf("expected %d requested and placed ships\tgot: %d requested, %d placed", len(FleetOrder), len(sink.requested), len(sink.placed))
	}
	if len(sink.rejected) != 2 {
		t.Fatalf("expected rejections: %d\tgot: %d", 2, len(sink.rejected))
	}
	if !errors.Is(sink.rejected[0], cerr.ErrOverlap) || !errors.Is(sink.rejected[1], cerr.ErrOutOfBounds) {
		t.Fatalf("unexpected rejection reasons: %v", sink.rejected)
	}
	if got := strings.Count(sink.completed, MarkerOccupied); got != 20 {
		t.Fatalf("expected occupied markers: %d\tgot: %d", 20, got)
	}
}

func TestSetupRunStopsOnSourceError(t *testing.T) {
	setup, err := NewSetup(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	source := &scriptedSource{reqs: []PlacementRequest{NewPlacementRequest(1, 1, OrientationHorizontal)}}
	err = setup.Run(context.Background(), source, &recordingSink{})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected: %v\tgot: %v", io.EOF, err)
	}
	if setup.IsComplete() {
		t.Fatal("setup must not be complete")
	}
}

func TestSetupRunCancelled(t *testing.T) {
	setup, err := NewSetup(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = setup.Run(ctx, &scriptedSource{}, &recordingSink{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected: %v\tgot: %v", context.Canceled, err)
	}
}

func TestSetupManager(t *testing.T) {
	bsm := NewBattleshipSetupManager(DefaultBoardWidth, DefaultBoardHeight)

	setup, err := bsm.CreateSetup()
	if err != nil {
		t.Fatal(err)
	}
	if len(setup.Uuid()) != 6 {
		t.Fatalf("expected uuid length: %d\tgot: %d", 6, len(setup.Uuid()))
	}

	found, err := bsm.GetSetup(setup.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != setup {
		t.Fatal("expected the same setup back")
	}

	bsm.TerminateSetup(setup.Uuid())
	if _, err := bsm.GetSetup(setup.Uuid()); err == nil {
		t.Fatal("expected error after termination")
	}

	if _, err := NewBattleshipSetupManager(0, 10).CreateSetup(); err == nil {
		t.Fatal("expected error for invalid board size")
	}
}
