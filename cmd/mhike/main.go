// Package main is the entry point for the mhike CLI.
// Its sole responsibility is wiring dependencies together and running the
// command tree. No business logic belongs here.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/mhike/internal/cli"
	"github.com/pkordes/mhike/internal/config"
	"github.com/pkordes/mhike/internal/repo"
	"github.com/pkordes/mhike/internal/service"
	"github.com/pkordes/mhike/internal/store"
)

func main() {
	// Cancel in-flight queries on Ctrl-C instead of killing the process
	// halfway through a write.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.New(connect, os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// connect opens the logbook at cfg.DBPath and builds the services on it.
func connect(ctx context.Context, cfg config.Config, log *slog.Logger) (cli.Services, error) {
	slog.SetDefault(log)

	// --- Database ---------------------------------------------------------
	st, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		return cli.Services{}, err
	}
	if err := st.Initialize(ctx); err != nil {
		st.Close()
		return cli.Services{}, fmt.Errorf("initialize %s: %w", cfg.DBPath, err)
	}

	// --- Services ---------------------------------------------------------
	hikeRepo := repo.NewHikeRepo(st.DB())
	obsRepo := repo.NewObservationRepo(st.DB())
	resetRepo := repo.NewResetRepo(st.DB())

	return cli.Services{
		Hikes:        service.NewHikeService(hikeRepo, resetRepo, log),
		Observations: service.NewObservationService(hikeRepo, obsRepo, log),
		Close:        st.Close,
	}, nil
}
