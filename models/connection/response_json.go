package connection

import (
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
	SetupUuid string `json:"setup_uuid"`
}

type RespNextShip struct {
	ShipName   string `json:"ship_name"`
	ShipLength int    `json:"ship_length"`
	Board      string `json:"board"`
}

type RespPlaceShip struct {
	ShipName    string           `json:"ship_name"`
	Coordinates []mb.Coordinates `json:"coordinates"`
}

type RespBoard struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Board  string `json:"board"`
}

type RespSetupComplete struct {
	OccupiedCells int    `json:"occupied_cells"`
	Board         string `json:"board"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
