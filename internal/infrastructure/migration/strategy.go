package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

const scriptsDir = "scripts"

// ErrDownUnsupported is returned by strategies that cannot roll back.
var ErrDownUnsupported = errors.New("down migrations are not supported by this strategy")

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Up(ctx context.Context) error
	Down(ctx context.Context, steps int) error
	Version(ctx context.Context) (int64, error)
	Status(ctx context.Context) error
	Name() string
}

// NewStrategy picks goose for PostgreSQL and gorm AutoMigrate for the other
// SQL drivers.
func NewStrategy(driver string, db *gorm.DB, log logger.Interface) (Strategy, error) {
	switch driver {
	case config.DriverPostgres:
		return &GooseStrategy{db: db, dialect: "postgres", logger: log.Named("migration.goose")}, nil
	case config.DriverMySQL, config.DriverSQLite:
		return &AutoMigrateStrategy{db: db, logger: log.Named("migration.automigrate")}, nil
	default:
		return nil, fmt.Errorf("driver %q does not support migrations", driver)
	}
}

// GooseStrategy applies the embedded SQL scripts.
type GooseStrategy struct {
	db      *gorm.DB
	dialect string
	logger  logger.Interface
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(scripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Up(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) Down(ctx context.Context, steps int) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, scriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context) (int64, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, sqlDB)
}

func (s *GooseStrategy) Status(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

// AutoMigrateStrategy derives the schema from the gorm models.
type AutoMigrateStrategy struct {
	db     *gorm.DB
	logger logger.Interface
}

func (s *AutoMigrateStrategy) Up(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "tables", len(models.All()))
	return nil
}

func (s *AutoMigrateStrategy) Down(context.Context, int) error {
	return ErrDownUnsupported
}

func (s *AutoMigrateStrategy) Version(context.Context) (int64, error) {
	return 0, nil
}

func (s *AutoMigrateStrategy) Status(ctx context.Context) error {
	migrator := s.db.WithContext(ctx).Migrator()
	for _, m := range models.All() {
		s.logger.Infow("table status", "model", fmt.Sprintf("%T", m), "exists", migrator.HasTable(m))
	}
	return nil
}

func (s *AutoMigrateStrategy) Name() string {
	return "automigrate"
}
