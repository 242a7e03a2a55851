package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The runner re-executes every migration file on each boot, so every
// statement must be re-runnable. CREATE TABLE/INDEX take IF NOT EXISTS;
// ALTER TABLE ... ADD CONSTRAINT does not and needs a pg_constraint
// existence guard instead.
func TestMigrationsAreRerunnable(t *testing.T) {
	dir := filepath.Join("..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migration files found")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name(), err)
		}
		sql := strings.ToUpper(string(raw))

		for _, stmt := range []string{"CREATE TABLE", "CREATE INDEX", "CREATE UNIQUE INDEX"} {
			count := strings.Count(sql, stmt)
			guarded := strings.Count(sql, stmt+" IF NOT EXISTS")
			if count != guarded {
				t.Errorf("%s: %d %q statement(s) missing IF NOT EXISTS", entry.Name(), count-guarded, stmt)
			}
		}

		if strings.Contains(sql, "ADD CONSTRAINT") && !strings.Contains(sql, "PG_CONSTRAINT") {
			t.Errorf("%s: ADD CONSTRAINT without a pg_constraint existence guard", entry.Name())
		}
	}
}
