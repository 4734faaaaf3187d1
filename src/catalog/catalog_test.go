package catalog_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/vientorepublic/docker-volume-backup/src/catalog"
)

func TestBackupFileName(t *testing.T) {
	at := time.Date(2026, 8, 25, 13, 4, 5, 0, time.Local)
	got := catalog.BackupFileName("web_data", at)
	want := "web_data_backup_20260825_130405.tar.gz"
	if got != want {
		t.Fatalf("BackupFileName = %q, want %q", got, want)
	}
	re := regexp.MustCompile(`^web_data_backup_\d{8}_\d{6}\.tar\.gz$`)
	if !re.MatchString(got) {
		t.Fatalf("filename %q does not match the timestamp convention", got)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"web_backup_20260825_130405.tar.gz": "newer",
		"web_backup_20250101_000000.tar.gz": "older",
		"db_backup_20260825_130405.tar.gz":  "same-second",
		"notes.txt":                         "ignored",
		"web_backup_garbage.tar.gz":         "ignored",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := catalog.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Scan returned %d entries, want 3", len(entries))
	}
	// Newest first, ties broken by volume name.
	if entries[0].Volume != "db" || entries[1].Volume != "web" {
		t.Fatalf("unexpected order: %q, %q", entries[0].Volume, entries[1].Volume)
	}
	if entries[2].Volume != "web" || entries[2].Timestamp.Year() != 2025 {
		t.Fatalf("oldest entry = %+v, want web 2025", entries[2])
	}
	if entries[0].Size != int64(len("same-second")) {
		t.Fatalf("size = %d, want %d", entries[0].Size, len("same-second"))
	}
}

func TestScan_MissingDir(t *testing.T) {
	if _, err := catalog.Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
