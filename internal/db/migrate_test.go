package db

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPendingMigrationsSkipsAppliedAndNonSQL(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_rooms.sql", "0001_init.sql", "README.md", "0003_notes.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "0004_dir.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	got := pendingMigrations(entries, map[string]bool{"0001_init.sql": true})
	want := []string{"0002_rooms.sql", "0003_notes.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFindMigrationsDirWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, migrationsDirName), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(root, "cmd", "campus-portal")
	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	got, err := findMigrationsDir(migrationsDirName)
	if err != nil {
		t.Fatalf("expected directory, got %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(root, migrationsDirName))
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
