package database

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0002_add_photo_index.up.sql", "CREATE INDEX x ON y (z);")
	writeFile(t, dir, "0001_create_assessment_tables.up.sql", "CREATE TABLE a (id INT);")
	writeFile(t, dir, "0001_create_assessment_tables.down.sql", "DROP TABLE a;")
	writeFile(t, dir, "README.md", "not a migration")

	migrations, err := readMigrationFiles(dir)
	if err != nil {
		t.Fatalf("readMigrationFiles failed: %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("Read %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != "0001" || migrations[1].Version != "0002" {
		t.Errorf("Migrations out of order: %s, %s", migrations[0].Version, migrations[1].Version)
	}
	if migrations[0].Title != "create assessment tables" {
		t.Errorf("Title = %q", migrations[0].Title)
	}
	if migrations[0].DownSQL != "DROP TABLE a;" {
		t.Errorf("DownSQL = %q", migrations[0].DownSQL)
	}
	if migrations[0].Checksum == "" || migrations[0].Checksum == migrations[1].Checksum {
		t.Error("Checksums must be present and content-dependent")
	}
}

func TestReadMigrationFilesMissingUp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0001_orphan.down.sql", "DROP TABLE a;")

	if _, err := readMigrationFiles(dir); err == nil {
		t.Fatal("Expected error for a down file without its up file")
	}
}

func TestReadMigrationFilesChecksumChanges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0001_base.up.sql", "CREATE TABLE a (id INT);")

	first, err := readMigrationFiles(dir)
	if err != nil {
		t.Fatalf("readMigrationFiles failed: %v", err)
	}

	writeFile(t, dir, "0001_base.up.sql", "CREATE TABLE a (id BIGINT);")
	second, err := readMigrationFiles(dir)
	if err != nil {
		t.Fatalf("readMigrationFiles failed: %v", err)
	}

	if first[0].Checksum == second[0].Checksum {
		t.Error("Checksum must change when the file content changes")
	}
}
