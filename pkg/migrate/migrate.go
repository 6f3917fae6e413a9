package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"strconv"

	"github.com/pressly/goose/v3"
)

const (
	DefaultDir = "pkg/migrate/migrations"

	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var embedded embed.FS

// Source selects the migration set goose runs. Each dialect keeps its own
// subdirectory under Dir. An empty Dir reads the set compiled into the binary.
type Source struct {
	Dialect string
	Dir     string
}

func (s Source) dialect() string {
	if s.Dialect == "" {
		return DialectPostgres
	}
	return s.Dialect
}

// prepare configures goose globals for the source and returns the directory to read.
func (s Source) prepare() (string, error) {
	dialect := s.dialect()
	if dialect != DialectPostgres && dialect != DialectSQLite {
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("set goose dialect: %w", err)
	}

	if s.Dir == "" {
		goose.SetBaseFS(embedded)
		return path.Join("migrations", dialect), nil
	}
	goose.SetBaseFS(nil)
	return filepath.Join(s.Dir, dialect), nil
}

// Run executes a standard goose command that requires a DB connection.
func Run(ctx context.Context, db *sql.DB, src Source, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	dir, err := src.prepare()
	if err != nil {
		return err
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, src Source, targetVersion string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	dir, err := src.prepare()
	if err != nil {
		return err
	}

	current, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if err := goose.UpToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if err := goose.DownToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}

// CurrentVersion reports the latest applied migration version.
func CurrentVersion(db *sql.DB, dialect string) (int64, error) {
	if _, err := (Source{Dialect: dialect}).prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}
