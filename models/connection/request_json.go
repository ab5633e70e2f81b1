package connection

import (
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

type ReqPlaceShip struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
}

func (r ReqPlaceShip) PlacementRequest() (mb.PlacementRequest, error) {
	orientation, err := mb.ParseOrientation(r.Orientation)
	if err != nil {
		return mb.PlacementRequest{}, err
	}
	return mb.NewPlacementRequest(r.X, r.Y, orientation), nil
}
