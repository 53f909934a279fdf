package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM local_storage").Scan(&count); err != nil {
		t.Errorf("table local_storage: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO local_storage (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()

	var value string
	if err := d.QueryRow(`SELECT value FROM local_storage WHERE key = 'k'`).Scan(&value); err != nil {
		t.Fatalf("select: %v", err)
	}
	if value != "v" {
		t.Errorf("value = %q, want v", value)
	}
	if d.Path() != path {
		t.Errorf("Path = %q", d.Path())
	}
}
