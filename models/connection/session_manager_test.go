package connection

import (
	"context"
	"errors"
	"testing"
	"time"

	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

func newTestSetup(t *testing.T) *mb.Setup {
	t.Helper()
	setup, err := mb.NewSetup(mb.DefaultBoardWidth, mb.DefaultBoardHeight)
	if err != nil {
		t.Fatal(err)
	}
	return setup
}

func TestSessionLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	session := bsm.GenerateNewSession(nil)
	if session.Id() == "" {
		t.Fatal("expected a session id")
	}

	found, err := bsm.FindSession(session.Id())
	if err != nil {
		t.Fatal(err)
	}
	if found != session {
		t.Fatal("expected the same session back")
	}

	bsm.TerminateSession(session.Id())
	if _, err := bsm.FindSession(session.Id()); err == nil {
		t.Fatal("expected error after termination")
	}
	if bsm.Len() != 0 {
		t.Fatalf("expected sessions: %d\tgot: %d", 0, bsm.Len())
	}
}

func TestReconnectSession(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(5 * time.Second))
	session := bsm.GenerateNewSession(nil)

	if err := bsm.ReconnectSession(session.Id(), nil); err == nil {
		t.Fatal("expected error when session is not waiting for reconnection")
	}
	if err := bsm.ReconnectSession("unknown", nil); err == nil {
		t.Fatal("expected error for unknown session")
	}

	session.SetSetup(newTestSetup(t))

	done := make(chan error, 1)
	go func() {
		done <- bsm.HandleAbnormalClosureSession(session)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !session.isAwaitingReconnection() {
		if time.Now().After(deadline) {
			t.Fatal("session never started waiting for reconnection")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := bsm.ReconnectSession(session.Id(), nil); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("abnormal closure handler did not return after reconnection")
	}

	if session.isAwaitingReconnection() {
		t.Fatal("session must stop waiting after reconnection")
	}
}

func TestAbnormalClosureGracePeriod(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(10 * time.Millisecond))

	session := bsm.GenerateNewSession(nil)
	err := bsm.HandleAbnormalClosureSession(session)
	var connErr ConnErr
	if !errors.As(err, &connErr) || connErr.Code() != ConnLoopBreak {
		t.Fatalf("expected break for session without setup, got %v", err)
	}

	session.SetSetup(newTestSetup(t))
	err = bsm.HandleAbnormalClosureSession(session)
	if !errors.As(err, &connErr) || connErr.Code() != ConnLoopBreak {
		t.Fatalf("expected break after grace period, got %v", err)
	}
}

func TestCleanupPeriodically(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(20 * time.Millisecond))
	bsm.GenerateNewSession(nil)
	bsm.GenerateNewSession(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bsm.CleanupPeriodically(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for bsm.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected stale sessions to be removed, %d left", bsm.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not stop after cancel")
	}
}

func TestFetchCodeFromMsg(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	tests := []struct {
		name         string
		payload      string
		expectedCode uint8
		expectErr    bool
	}{
		{name: "place ship", payload: `{"code":3,"payload":{"x":1,"y":1,"orientation":"h"}}`, expectedCode: CodePlaceShip},
		{name: "zero code", payload: `{"code":0}`, expectedCode: CodeSessionID},
		{name: "missing code", payload: `{"payload":{}}`, expectErr: true},
		{name: "invalid json", payload: `code`, expectErr: true},
		{name: "code overflow", payload: `{"code":300}`, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, err := bsm.FetchCodeFromMsg([]byte(test.payload))
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error for %s", test.payload)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, code)
			}
		})
	}
}

func TestReqPlaceShip(t *testing.T) {
	req, err := ReqPlaceShip{X: 4, Y: 2, Orientation: "v"}.PlacementRequest()
	if err != nil {
		t.Fatal(err)
	}
	if req != mb.NewPlacementRequest(4, 2, mb.OrientationVertical) {
		t.Fatalf("unexpected request: %+v", req)
	}

	if _, err := (ReqPlaceShip{X: 4, Y: 2, Orientation: "up"}).PlacementRequest(); err == nil {
		t.Fatal("expected error for invalid orientation")
	}
}
