package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The task cascade and the event date invariant live in the schema, not
// in Go code; these checks keep them from being dropped in a migration
// edit.
func TestInitialSchemaConstraints(t *testing.T) {
	raw, err := os.ReadFile("migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	schema := string(raw)

	cascade := regexp.MustCompile(`event_id\s+text\s+NOT\s+NULL\s+REFERENCES\s+events\s*\(id\)\s+ON\s+DELETE\s+CASCADE`)
	if !cascade.MatchString(schema) {
		t.Error("tasks.event_id must cascade on event deletion")
	}

	if !strings.Contains(schema, "CHECK (end_time > start_time)") {
		t.Error("events must carry the end_time > start_time check")
	}

	if !strings.Contains(schema, "email         text NOT NULL UNIQUE") {
		t.Error("users.email must be unique")
	}
}

func TestInitialSchemaDownDropsAllTables(t *testing.T) {
	raw, err := os.ReadFile("migrations/0001_init.down.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	down := string(raw)

	for _, table := range []string{"tasks", "events", "users"} {
		if !strings.Contains(down, "DROP TABLE IF EXISTS "+table) {
			t.Errorf("down migration must drop %s", table)
		}
	}
}
