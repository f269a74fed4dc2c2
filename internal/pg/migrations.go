package pg

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/migrations"
)

// gooseLogger sends goose progress through the global zap logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	zap.L().Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	zap.L().Fatal(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// RunMigrations applies the embedded schema migrations up to the latest version.
func RunMigrations(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	zap.L().Info("schema is up to date", zap.Int64("version", version))
	return nil
}
