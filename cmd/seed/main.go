package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/goalmaven/goal-maven/internal/app"
	"github.com/goalmaven/goal-maven/internal/config"
	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/postgres"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
	"github.com/goalmaven/goal-maven/internal/seeder"
)

func main() {
	dir := flag.String("dir", "", "directory holding the seed data files (defaults to SEED_DATA_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	dataDir := cfg.SeedDataDir
	if *dir != "" {
		dataDir = *dir
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := seeder.Repositories{
		Continents: postgres.NewContinentRepository(db),
		Nations:    postgres.NewNationRepository(db),
		Cities:     postgres.NewCityRepository(db),
		Stadiums:   postgres.NewStadiumRepository(db),
		Managers:   postgres.NewManagerRepository(db),
		Referees:   postgres.NewRefereeRepository(db),
		Roles:      postgres.NewPlayerRoleRepository(db),
		Players:    postgres.NewPlayerRepository(db),
		Teams:      postgres.NewTeamRepository(db),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := seeder.New(repos, logger, cfg.SeedWorkers).Run(ctx, dataDir)
	if err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	total := 0
	for _, r := range results {
		total += r.Upserted
	}
	logger.Info("seed complete", "files", len(results), "rows_upserted", total)
}
