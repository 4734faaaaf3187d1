package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vientorepublic/docker-volume-backup/src/catalog"
	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
)

func TestListVolumes_Table(t *testing.T) {
	fake := dockerapi.NewFake()
	fake.VolumesMap["web"] = dockerapi.VolumeInfo{Name: "web", Driver: "local"}
	fake.VolumesMap["db"] = dockerapi.VolumeInfo{Name: "db", Driver: "local"}
	useFakeDocker(t, fake)

	out, _, err := runCLI(t, "list", "volumes")
	if err != nil {
		t.Fatalf("list volumes: %v", err)
	}
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "web") || !strings.Contains(out, "db") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
}

func TestListVolumes_JSON(t *testing.T) {
	fake := dockerapi.NewFake()
	fake.VolumesMap["web"] = dockerapi.VolumeInfo{Name: "web", Driver: "local"}
	useFakeDocker(t, fake)

	out, _, err := runCLI(t, "list", "volumes", "-o", "json")
	if err != nil {
		t.Fatalf("list volumes: %v", err)
	}
	var vols []dockerapi.VolumeInfo
	if err := json.Unmarshal([]byte(out), &vols); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if len(vols) != 1 || vols[0].Name != "web" {
		t.Fatalf("unexpected volumes: %+v", vols)
	}
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	writeFixtureArchive(t, dir, "web_backup_20260825_130405.tar.gz", map[string]string{"a": "b"})
	cfgPath := writeConfigFile(t, dir)

	out, _, err := runCLI(t, "list", "backups", "--config", cfgPath)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if !strings.Contains(out, "web") || !strings.Contains(out, "2026-08-25 13:04:05") {
		t.Fatalf("unexpected backups table:\n%s", out)
	}
}

func TestListBackups_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFixtureArchive(t, dir, "web_backup_20260825_130405.tar.gz", map[string]string{"a": "b"})
	cfgPath := writeConfigFile(t, dir)

	out, _, err := runCLI(t, "list", "backups", "--config", cfgPath, "-o", "json")
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	var entries []catalog.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].Volume != "web" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestList_UnknownKind(t *testing.T) {
	if _, _, err := runCLI(t, "list", "containers"); err == nil {
		t.Fatalf("expected error for unknown list kind")
	}
}
