package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sells-group/outreach-cli/internal/advance"
	"github.com/sells-group/outreach-cli/internal/campaign"
	"github.com/sells-group/outreach-cli/internal/db"
	"github.com/sells-group/outreach-cli/internal/discovery"
	"github.com/sells-group/outreach-cli/internal/launch"
	"github.com/sells-group/outreach-cli/internal/runlog"
	"github.com/sells-group/outreach-cli/internal/sequence"
	"github.com/sells-group/outreach-cli/internal/strategy"
	"github.com/sells-group/outreach-cli/internal/supplier"
	"github.com/sells-group/outreach-cli/pkg/anthropic"
)

// appEnv bundles the store-backed components shared across commands.
type appEnv struct {
	Pool      *pgxpool.Pool
	Registry  *supplier.PostgresRegistry
	Campaigns *campaign.PostgresStore
	Runs      *runlog.Log
	Selector  *strategy.Selector
	Ingestor  *discovery.Ingestor
}

func (e *appEnv) Close() {
	e.Pool.Close()
}

// initApp connects to the store and wires the registry, campaign store, run
// log, catalogs, and ingestor.
func initApp(ctx context.Context) (*appEnv, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}

	pool, err := db.NewPool(ctx, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}

	selector, err := strategy.NewSelectorFromFile(cfg.Catalog.StrategiesPath)
	if err != nil {
		pool.Close()
		return nil, err
	}
	source, err := discovery.NewCatalogSourceFromFile(cfg.Catalog.SuppliersPath)
	if err != nil {
		pool.Close()
		return nil, err
	}

	registry := supplier.NewPostgresRegistry(pool)
	return &appEnv{
		Pool:      pool,
		Registry:  registry,
		Campaigns: campaign.NewPostgresStore(pool),
		Runs:      runlog.New(pool),
		Selector:  selector,
		Ingestor:  discovery.NewIngestor(registry, source),
	}, nil
}

// initLauncher wires the full launch path on top of initApp, including the
// Claude-backed sequence generator.
func initLauncher(ctx context.Context) (*appEnv, *launch.Launcher, error) {
	if err := cfg.Validate("launch"); err != nil {
		return nil, nil, err
	}

	env, err := initApp(ctx)
	if err != nil {
		return nil, nil, err
	}

	gen := sequence.NewClaudeGenerator(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic)
	builder := sequence.NewBuilder(gen)
	launcher := launch.NewLauncher(env.Ingestor, env.Campaigns, env.Selector, builder, env.Runs, cfg.Launch.MaxConcurrentSuppliers)

	return env, launcher, nil
}

// newRunner builds the advancement runner over an existing env.
func newRunner(env *appEnv) *advance.Runner {
	return advance.NewRunner(env.Campaigns, advance.NewLogDispatcher(), env.Runs, advance.Config{
		BatchSize: cfg.Advance.BatchSize,
		Budget:    time.Duration(cfg.Advance.BudgetSecs) * time.Second,
	})
}
