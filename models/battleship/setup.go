package battleship

import (
	"context"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type SetupState uint8

const (
	SetupStateAwaitingPlacement SetupState = iota
	SetupStateComplete
)

func (s SetupState) String() string {
	if s == SetupStateComplete {
		return "complete"
	}
	return "awaiting placement"
}

// Setup places a fleet on a board one ship at a time, in fleet order.
// The mutex only matters when the board is rendered from another
// goroutine (e.g. an http handler) while a session is placing ships.
type Setup struct {
	uuid    string
	board   *Board
	fleet   *Fleet
	current int
	mu      sync.RWMutex
}

func NewSetup(width, height int) (*Setup, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return NewSetupWithFleet(board, NewFleet()), nil
}

func NewSetupWithFleet(board *Board, fleet *Fleet) *Setup {
	return &Setup{
		uuid:  uuid.NewString()[:6],
		board: board,
		fleet: fleet,
	}
}

func (s *Setup) Uuid() string {
	return s.uuid
}

func (s *Setup) Board() *Board {
	return s.board
}

func (s *Setup) Fleet() *Fleet {
	return s.fleet
}

func (s *Setup) State() SetupState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current >= s.fleet.Len() {
		return SetupStateComplete
	}
	return SetupStateAwaitingPlacement
}

func (s *Setup) IsComplete() bool {
	return s.State() == SetupStateComplete
}

// CurrentShip is the ship waiting to be placed, nil once the setup is complete.
func (s *Setup) CurrentShip() *Ship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current >= s.fleet.Len() {
		return nil
	}
	return s.fleet.Ships()[s.current]
}

// Offer tries to place the current ship. On success the setup moves to
// the next ship; on failure nothing changes and the same ship is expected again.
func (s *Setup) Offer(req PlacementRequest) (*Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current >= s.fleet.Len() {
		return nil, cerr.ErrSetupComplete
	}

	ship := s.fleet.Ships()[s.current]
	if err := s.board.PlaceShip(req, ship); err != nil {
		return ship, err
	}

	s.current++
	return ship, nil
}

func (s *Setup) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.board.Render()
}

// PlacementSource produces placement requests, usually from a user.
// It is responsible for re-asking on malformed input; the setup only
// ever receives well typed requests.
type PlacementSource interface {
	NextPlacement(ctx context.Context, ship *Ship) (PlacementRequest, error)
}

// SetupSink is notified of every step of a setup. Returning an error
// stops Run.
type SetupSink interface {
	ShipRequested(ship *Ship, boardView string) error
	PlacementRejected(ship *Ship, req PlacementRequest, reason error) error
	ShipPlaced(ship *Ship, coords []Coordinates) error
	SetupCompleted(boardView string) error
}

// Run drives the setup until every ship is placed. Rejected placements
// are reported to sink and retried without limit.
func (s *Setup) Run(ctx context.Context, source PlacementSource, sink SetupSink) error {
	for !s.IsComplete() {
		ship := s.CurrentShip()
		if err := sink.ShipRequested(ship, s.Render()); err != nil {
			return err
		}

		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			req, err := source.NextPlacement(ctx, ship)
			if err != nil {
				return err
			}

			if _, err := s.Offer(req); err != nil {
				if err := sink.PlacementRejected(ship, req, err); err != nil {
					return err
				}
				continue
			}

			if err := sink.ShipPlaced(ship, s.board.ShipCoordinates(ship.Handle())); err != nil {
				return err
			}
			break
		}
	}

	return sink.SetupCompleted(s.Render())
}
