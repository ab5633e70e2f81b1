package api

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-setup/db/sqlc"
	"github.com/saeidalz13/battleship-setup/internal/config"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
	URLPathSetupUuidKeyword  string = "setupUuid"
)

var defaultPort int = 9191

type Server struct {
	port           int
	stage          string
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader

	SetupManager   mb.SetupManager
	SessionManager mc.SessionManager
	DbManager      sqlc.DbManager
}

type Option func(*Server) error

func NewServer(setupManager mb.SetupManager, sessionManager mc.SessionManager, optFuncs ...Option) *Server {
	server := Server{
		SetupManager:   setupManager,
		SessionManager: sessionManager,
		DbManager:      sqlc.NewDbManager(nil),
		stage:          config.StageDev,
		allowedOrigins: make(map[string]bool),
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	if server.port == 0 {
		server.port = defaultPort
	}

	server.upgrader = websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// more than enough for a placement request or a rendered board
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     server.checkOrigin,
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != config.StageProd && stage != config.StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		for _, origin := range origins {
			s.allowedOrigins[origin] = true
		}
		return nil
	}
}

func WithDbManager(dbManager sqlc.DbManager) Option {
	return func(s *Server) error {
		s.DbManager = dbManager
		return nil
	}
}

func (s *Server) Port() int {
	return s.port
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

// Any origin is accepted in dev; prod only accepts the configured ones.
func (s *Server) checkOrigin(r *http.Request) bool {
	if s.stage == config.StageDev {
		return true
	}
	return s.allowedOrigins[r.Header.Get("Origin")]
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /battleship", s.HandleWs)
	mux.HandleFunc("GET /battleship/setups/{"+URLPathSetupUuidKeyword+"}/board", s.HandleBoard)
	return mux
}

func getServerIpNet(localAddr string) (pqtype.Inet, error) {
	host, _, err := net.SplitHostPort(localAddr)
	if err != nil {
		return pqtype.Inet{}, err
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return pqtype.Inet{}, fmt.Errorf("invalid local ip: %s", host)
	}

	mask := net.CIDRMask(128, 128)
	if ip4 := parsedIP.To4(); ip4 != nil {
		parsedIP = ip4
		mask = net.CIDRMask(32, 32)
	}

	return pqtype.Inet{
		IPNet: net.IPNet{IP: parsedIP, Mask: mask},
		Valid: true,
	}, nil
}

func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		// Upgrade has already replied to the client
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	if sessionIdQuery != "" {
		if err := s.SessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			log.Println(err)
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
		return
	}

	serverIp, err := getServerIpNet(conn.LocalAddr().String())
	if err != nil {
		log.Println("failed to extract server ip from local addr:", err)
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	NewRequestProcessor(s, serverIp).processSessionRequests(s.SessionManager.GenerateNewSession(conn))
}

// HandleBoard serves the current board of a live setup as plain text.
func (s *Server) HandleBoard(w http.ResponseWriter, r *http.Request) {
	setup, err := s.SetupManager.GetSetup(r.PathValue(URLPathSetupUuidKeyword))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(setup.Render())); err != nil {
		log.Println(err)
	}
}
