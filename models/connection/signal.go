package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Server asks for the placement of the next ship
	CodeNextShip

	// Client offers a placement; the server answers with the
	// same code and either the placed cells or an error
	CodePlaceShip

	// Client asks for the current board
	CodeBoard

	CodeSetupComplete
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	// Payload of a known code could not be decoded
	CodeInvalidPayload
)
