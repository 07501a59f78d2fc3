package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/infra"
	"sportapp/internal/logging"
	"sportapp/internal/metrics"
	"sportapp/internal/repositories"
	"sportapp/internal/seed"
	"sportapp/internal/services"
	"sportapp/internal/storage"
	"sportapp/pkg/utils"
)

type Context struct {
	ConfigPath string
}

// env bundles what every database command needs.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (c *Context) open(ctx context.Context) (*env, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	db, err := infra.InitPostgresql(ctx, cfg.Database)
	if err != nil {
		return nil, multierr.Append(err, logging.Sync(log))
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) close() error {
	return multierr.Combine(infra.ClosePostgresql(e.db), logging.Sync(e.log))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

type MigrateCmd struct{}

func (m *MigrateCmd) Run(c *Context) (err error) {
	ctx, cancel := signalContext()
	defer cancel()

	e, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, e.close()) }()

	if err := infra.Migrate(ctx, e.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	e.log.Info("schema is up to date")
	return nil
}

type SeedCmd struct {
	File    string `arg:"" optional:"" help:"Catalog file." type:"existingfile" default:"seed/catalog.toml"`
	Migrate bool   `help:"Run migrations first."`
}

func (s *SeedCmd) Run(c *Context) (err error) {
	catalog, err := seed.LoadFile(s.File)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	e, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, e.close()) }()

	if s.Migrate {
		if err := infra.Migrate(ctx, e.db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	metricsManager := metrics.NewManager(metrics.NewRegistry())
	accountRepo := repositories.NewAccountRepository(e.db)
	planRepo := repositories.NewPlanRepository(e.db)
	sessionRepo := repositories.NewSessionRepository(e.db)

	accounts := services.NewAccountService(
		accountRepo,
		repositories.NewProfileRepository(e.db),
		utils.NewTokenIssuer(e.cfg.JWT.Secret, e.cfg.JWT.Expiration),
		metricsManager,
		e.log,
	)
	plans := services.NewPlanService(planRepo, sessionRepo, storage.NewDisabledStorage(), e.cfg.S3.PresignExpiry, e.log)

	res, err := seed.NewSeeder(accounts, accountRepo, plans, planRepo, e.log).Apply(ctx, catalog)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d workouts (%d already present) for user %d\n", res.Created, res.Skipped, res.OwnerID)
	return nil
}

type InfoCmd struct{}

func (i *InfoCmd) Run(c *Context) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	fmt.Printf("env:            %s\n", cfg.Env)
	fmt.Printf("server address: %s\n", cfg.Server.Address)
	fmt.Printf("auto migrate:   %t\n", cfg.Database.AutoMigrate)
	fmt.Printf("s3 images:      %t\n", cfg.S3.Enabled())
	fmt.Printf("stats timezone: %s\n", utils.LoadLocationOrUTC(cfg.Stats.Timezone))
	fmt.Printf("log:            %s/%s\n", cfg.Log.Level, cfg.Log.Format)
	return nil
}
