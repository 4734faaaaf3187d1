package cli_test

import (
	"archive/tar"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/vientorepublic/docker-volume-backup/src/cli"
	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
)

// runCLI executes the root command with the given args and returns stdout,
// stderr, and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	_, err := cmd.ExecuteC()
	return out.String(), errOut.String(), err
}

// useFakeDocker installs a fake Docker client for the duration of the test.
func useFakeDocker(t *testing.T, fake *dockerapi.FakeClient) {
	t.Helper()
	restore := cli.SetDockerClientFactory(func() (dockerapi.Client, error) {
		return fake, nil
	})
	t.Cleanup(restore)
}

// writeConfigFile writes a config file whose backup_dir points at dir and
// returns its path.
func writeConfigFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf("backup_dir: %s\n", dir)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeFixtureArchive creates a small gzip tar archive under dir.
func writeFixtureArchive(t *testing.T, dir, name string, files map[string]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		body := files[n]
		if err := tw.WriteHeader(&tar.Header{Name: n, Mode: 0o644, Size: int64(len(body))}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
}
