package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("coordinates out of board bound")
	ErrOverlap           = errors.New("overlaps with ship")
	ErrShipAlreadyPlaced = errors.New("ship is already placed")
	ErrUnknownShip       = errors.New("ship does not belong to the fleet")
	ErrSetupComplete     = errors.New("all ships are already placed")
)

func ErrCoordinatesOutOfBoardBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrCoordinatesOverlap(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOverlap, x, y)
}

func ErrShipPlacedBefore(name string) error {
	return fmt.Errorf("%w: %s", ErrShipAlreadyPlaced, name)
}

func ErrShipHandleNotInFleet(handle int) error {
	return fmt.Errorf("%w\thandle: %d", ErrUnknownShip, handle)
}

func ErrShipFromOtherFleet(name string) error {
	return fmt.Errorf("%w: %s is from another fleet than the ships on this board", ErrUnknownShip, name)
}

func ErrInvalidBoardSize(width, height int) error {
	return fmt.Errorf("board width and height must be positive\twidth: %d\theight: %d", width, height)
}

func ErrInvalidOrientation(orientation string) error {
	return fmt.Errorf("orientation must be h or v, got: %q", orientation)
}

func ErrInvalidCoordinatesInput(input string) error {
	return fmt.Errorf("coordinates must be two numbers separated by a space (x y), got: %q", input)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrSetupNotExists(setupUuid string) error {
	return fmt.Errorf("setup with this uuid does not exist, uuid: %s", setupUuid)
}

func ErrSignalAbsent() error {
	return fmt.Errorf("incoming req payload must contain 'code' field")
}
