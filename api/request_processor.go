package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-setup/db/sqlc"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

// RequestProcessor runs one setup over one websocket session. It is
// the placement source and the setup sink of that setup.
type RequestProcessor struct {
	server   *Server
	serverIp pqtype.Inet
	session  *mc.Session
}

var (
	_ mb.PlacementSource = (*RequestProcessor)(nil)
	_ mb.SetupSink       = (*RequestProcessor)(nil)
)

func NewRequestProcessor(server *Server, serverIp pqtype.Inet) *RequestProcessor {
	return &RequestProcessor{server: server, serverIp: serverIp}
}

func (rp *RequestProcessor) write(msg interface{}) error {
	return rp.server.SessionManager.WriteToSessionConn(rp.session, msg, mc.MessageTypeJSON)
}

func (rp *RequestProcessor) recordAnalytics(increment func(context.Context, pqtype.Inet) error) {
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	// analytics never interrupt a setup
	if err := increment(ctx, rp.serverIp); err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	rp.session = session
	sessionId := session.Id()

	defer func() {
		if setup := session.Setup(); setup != nil {
			rp.server.SetupManager.TerminateSetup(setup.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.server.SessionManager.TerminateSession(sessionId)
	}()

	setup, err := rp.server.SetupManager.CreateSetup()
	if err != nil {
		log.Println(err)
		_ = rp.write(mc.NewErrorMessage(mc.CodeSessionID, err.Error(), "could not create setup"))
		return
	}
	session.SetSetup(setup)

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId, SetupUuid: setup.Uuid()})
	if err := rp.write(resp); err != nil {
		return
	}

	rp.recordAnalytics(rp.server.DbManager.Analytics.IncrementSetupsStartedCount)

	if err := setup.Run(context.Background(), rp, rp); err != nil {
		log.Printf("setup %s stopped: %s\n", setup.Uuid(), err)
		return
	}

	rp.serveCompletedSetup(setup)
}

// After the fleet is placed the client may still ask for the board
// until it closes the connection.
func (rp *RequestProcessor) serveCompletedSetup(setup *mb.Setup) {
	for {
		code, payload, err := rp.readSignal()
		if err != nil {
			return
		}
		if payload == nil {
			continue
		}

		switch code {
		case mc.CodeBoard:
			err = rp.writeBoard(setup)
		case mc.CodePlaceShip:
			err = rp.write(mc.NewErrorMessage(mc.CodePlaceShip, cerr.ErrSetupComplete.Error(), "could not place ship"))
		default:
			err = rp.writeInvalidSignal()
		}
		if err != nil {
			return
		}
	}
}

// readSignal returns a nil payload (and no error) when the message
// was answered already because it had no usable code, or when the
// session reconnected and the client was told where the setup stands.
func (rp *RequestProcessor) readSignal() (uint8, []byte, error) {
	// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
	// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
	_, payload, err := rp.server.SessionManager.ReadFromSessionConn(rp.session)
	if err != nil {
		var connErr mc.ConnErr
		if errors.As(err, &connErr) && connErr.Code() == mc.ConnSessionReconnected {
			return 0, nil, rp.resumeSetup()
		}
		return 0, nil, err
	}

	code, err := rp.server.SessionManager.FetchCodeFromMsg(payload)
	if err != nil {
		msg := mc.NewErrorMessage(mc.CodeSignalAbsent, err.Error(), "incoming req payload must contain 'code' field")
		if err := rp.write(msg); err != nil {
			return 0, nil, err
		}
		return 0, nil, nil
	}

	return code, payload, nil
}

// resumeSetup tells a reconnected client which ship is expected next,
// or that the fleet is already placed.
func (rp *RequestProcessor) resumeSetup() error {
	setup := rp.session.Setup()
	if ship := setup.CurrentShip(); ship != nil {
		return rp.ShipRequested(ship, setup.Render())
	}

	msg := mc.NewMessage[mc.RespSetupComplete](mc.CodeSetupComplete)
	msg.AddPayload(mc.RespSetupComplete{
		OccupiedCells: setup.Board().OccupiedCount(),
		Board:         setup.Render(),
	})
	return rp.write(msg)
}

func (rp *RequestProcessor) writeBoard(setup *mb.Setup) error {
	msg := mc.NewMessage[mc.RespBoard](mc.CodeBoard)
	msg.AddPayload(mc.RespBoard{
		Width:  setup.Board().Width(),
		Height: setup.Board().Height(),
		Board:  setup.Render(),
	})
	return rp.write(msg)
}

func (rp *RequestProcessor) writeInvalidSignal() error {
	return rp.write(mc.NewErrorMessage(mc.CodeInvalidSignal, "", "invalid code in the incoming payload"))
}

// NextPlacement reads until the client sends a well formed placement.
// Malformed requests are answered and do not reach the setup.
func (rp *RequestProcessor) NextPlacement(ctx context.Context, ship *mb.Ship) (mb.PlacementRequest, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mb.PlacementRequest{}, err
		}

		code, payload, err := rp.readSignal()
		if err != nil {
			return mb.PlacementRequest{}, err
		}
		if payload == nil {
			continue
		}

		switch code {
		case mc.CodePlaceShip:
			var reqMsg mc.Message[mc.ReqPlaceShip]
			if err := json.Unmarshal(payload, &reqMsg); err != nil {
				if err := rp.write(mc.NewErrorMessage(mc.CodeInvalidPayload, err.Error(), "invalid place ship payload")); err != nil {
					return mb.PlacementRequest{}, err
				}
				continue
			}

			req, err := reqMsg.Payload.PlacementRequest()
			if err != nil {
				if err := rp.write(mc.NewErrorMessage(mc.CodePlaceShip, err.Error(), "could not place ship")); err != nil {
					return mb.PlacementRequest{}, err
				}
				continue
			}
			return req, nil

		case mc.CodeBoard:
			if err := rp.writeBoard(rp.session.Setup()); err != nil {
				return mb.PlacementRequest{}, err
			}

		default:
			if err := rp.writeInvalidSignal(); err != nil {
				return mb.PlacementRequest{}, err
			}
		}
	}
}

func (rp *RequestProcessor) ShipRequested(ship *mb.Ship, boardView string) error {
	msg := mc.NewMessage[mc.RespNextShip](mc.CodeNextShip)
	msg.AddPayload(mc.RespNextShip{
		ShipName:   ship.Name(),
		ShipLength: ship.Length(),
		Board:      boardView,
	})
	return rp.write(msg)
}

func (rp *RequestProcessor) PlacementRejected(ship *mb.Ship, req mb.PlacementRequest, reason error) error {
	log.Printf("session %s: could not place %s at %s %s: %s\n", rp.session.Id(), ship.Name(), req.Anchor, req.Orientation, reason)
	rp.recordAnalytics(rp.server.DbManager.Analytics.IncrementPlacementsRejectedCount)

	return rp.write(mc.NewErrorMessage(mc.CodePlaceShip, reason.Error(), "could not place ship"))
}

func (rp *RequestProcessor) ShipPlaced(ship *mb.Ship, coords []mb.Coordinates) error {
	msg := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)
	msg.AddPayload(mc.RespPlaceShip{ShipName: ship.Name(), Coordinates: coords})
	return rp.write(msg)
}

func (rp *RequestProcessor) SetupCompleted(boardView string) error {
	rp.recordAnalytics(rp.server.DbManager.Analytics.IncrementSetupsCompletedCount)

	msg := mc.NewMessage[mc.RespSetupComplete](mc.CodeSetupComplete)
	msg.AddPayload(mc.RespSetupComplete{
		OccupiedCells: rp.session.Setup().Board().OccupiedCount(),
		Board:         boardView,
	})
	return rp.write(msg)
}
