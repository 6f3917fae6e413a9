package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strings"
)

var (
	sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
)

// ValidateDir validates the on-disk migration sets under dir.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	return validateFS(os.DirFS(dir))
}

// ValidateEmbedded validates the migration sets compiled into the binary.
func ValidateEmbedded() error {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		return err
	}
	return validateFS(sub)
}

// validateFS checks filenames and goose headers per dialect, and that every dialect
// carries the same list of versions.
func validateFS(fsys fs.FS) error {
	versions := map[string][]string{}
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		got, err := validateDialect(fsys, dialect)
		if err != nil {
			return err
		}
		versions[dialect] = got
	}

	pg, lite := versions[DialectPostgres], versions[DialectSQLite]
	if strings.Join(pg, ",") != strings.Join(lite, ",") {
		return fmt.Errorf("dialect migration sets differ: postgres=%v sqlite3=%v", pg, lite)
	}
	return nil
}

func validateDialect(fsys fs.FS, dialect string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dialect)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dialect, err)
	}

	seen := map[string]string{} // version -> filename
	var versions []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name
		versions = append(versions, version)

		b, err := fs.ReadFile(fsys, path.Join(dialect, name))
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", name, err)
		}

		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Up\"", name)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Down\"", name)
		}
	}

	return versions, nil
}
