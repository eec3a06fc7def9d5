// Package migration creates the compliance history schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked before running steps; its presence means the schema is current.
const sentinelTable = "public.compliance_checks"

var steps = []migrationStep{
	{
		Name: "create_table_compliance_checks",
		SQL: `CREATE TABLE IF NOT EXISTS compliance_checks (
  id                 UUID         PRIMARY KEY,
  source_name        TEXT         NOT NULL,
  content_type       TEXT         NOT NULL,
  storage_path       TEXT         NOT NULL DEFAULT '',
  guidelines         TEXT         NOT NULL DEFAULT '',
  overall_percentage NUMERIC(5,2) NOT NULL CHECK (overall_percentage BETWEEN 0 AND 100),
  overall_status     TEXT         NOT NULL CHECK (overall_status IN ('Pass', 'Warning', 'Fail')),
  report             JSONB        NOT NULL,
  created_at         TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_compliance_checks_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_compliance_checks_created_at ON compliance_checks (created_at DESC);`,
	},
	{
		Name: "create_index_compliance_checks_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_compliance_checks_status ON compliance_checks (overall_status);`,
	},
}

// EnsureMigrated checks whether the history table exists and runs the
// migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Duration("duration_ms", time.Since(start)),
				zap.Duration("step_duration_ms", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration_ms", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return nil
}
