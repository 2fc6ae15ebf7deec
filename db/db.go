// Package db holds the SQL migrations of the PostgreSQL history store.
package db

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

// UpMigrations returns the contents of every *.up.sql migration in file name
// order.
func UpMigrations() ([]string, error) {
	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		content, err := migrations.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		scripts = append(scripts, strings.TrimSpace(string(content)))
	}
	return scripts, nil
}
