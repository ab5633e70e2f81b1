package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-setup/internal/config"
	"github.com/saeidalz13/battleship-setup/internal/console"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

// Interactive setup on stdin/stdout. See cmd/main.go for the websocket server.
func main() {
	cfg := config.MustLoad(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setup, err := mb.NewSetup(cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		log.Fatalln(err)
	}

	c := console.New(os.Stdin, os.Stdout)
	if err := setup.Run(ctx, c, c); err != nil {
		log.Fatalln(err)
	}
}
