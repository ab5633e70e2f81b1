package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/db"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	"github.com/saeidalz13/battleship-setup/internal/config"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

func main() {
	cfg := config.MustLoad(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbManager := sqlc.NewDbManager(nil)
	if cfg.AnalyticsEnabled() {
		conn := db.MustConnectToDb(cfg.DatabaseURL, db.DefaultMigrationDir)
		defer conn.Close()
		dbManager = sqlc.NewDbManager(sqlc.New(conn))
	} else {
		log.Println("DATABASE_URL is not set; analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager(mc.WithCleanupInterval(cfg.SessionCleanupInterval))
	setupManager := mb.NewBattleshipSetupManager(cfg.BoardWidth, cfg.BoardHeight)

	server := api.NewServer(
		setupManager,
		sessionManager,
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithAllowedOrigins(cfg.AllowedOrigins...),
		api.WithDbManager(dbManager),
	)

	go sessionManager.CleanupPeriodically(ctx)

	httpServer := &http.Server{
		Addr:    server.Addr(),
		Handler: server.Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Println(err)
		}
	}()

	log.Printf("Listening to port %d\n", server.Port())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}
