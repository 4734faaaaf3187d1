package volume

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vientorepublic/docker-volume-backup/src/archive"
	"github.com/vientorepublic/docker-volume-backup/src/catalog"
	"github.com/vientorepublic/docker-volume-backup/src/config"
	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
	"github.com/vientorepublic/docker-volume-backup/src/logging"
	"github.com/vientorepublic/docker-volume-backup/src/validate"
)

// Mount points inside the helper container. The volume under backup (or
// restore) is always at volumeMountPath, the host backup directory at
// backupMountPath.
const (
	volumeMountPath = "/volume"
	backupMountPath = "/backup"
)

// Backup archives the contents of the named volume into a tar.gz file under
// cfg.BackupDir and returns the file's absolute path. When output is empty
// the default <name>_backup_<timestamp>.tar.gz name is used, timestamped
// with now in local time.
func Backup(ctx context.Context, client dockerapi.Client, cfg config.Config, log logging.Logger, stdout io.Writer, name, output string, now time.Time) (string, error) {
	if err := validate.VolumeName(name); err != nil {
		return "", err
	}
	if output == "" {
		output = catalog.BackupFileName(name, now)
	}
	if err := validate.ArchivePath(output); err != nil {
		return "", err
	}

	exists, err := client.VolumeExists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("inspect volume %q: %w", name, err)
	}
	if !exists {
		return "", volumeNotFound(ctx, client, name)
	}

	hostDir, err := filepath.Abs(cfg.BackupDir)
	if err != nil {
		return "", fmt.Errorf("resolve backup directory: %w", err)
	}

	spec := dockerapi.ContainerSpec{
		Image: cfg.Image,
		Cmd:   []string{"tar", "-czf", path.Join(backupMountPath, output), "-C", volumeMountPath, "."},
		Mounts: []dockerapi.Mount{
			{Kind: dockerapi.MountVolume, Source: name, Target: volumeMountPath, ReadOnly: true},
			{Kind: dockerapi.MountBind, Source: hostDir, Target: backupMountPath},
		},
	}
	if _, err := client.RunContainer(ctx, spec); err != nil {
		return "", fmt.Errorf("backup of volume %q failed: %w", name, err)
	}

	// The runtime reported success; make sure tar actually produced
	// something. A missing or empty file means a silent failure inside the
	// container.
	outPath := filepath.Join(hostDir, filepath.FromSlash(output))
	fi, err := os.Stat(outPath)
	if err != nil {
		return "", fmt.Errorf("backup file %s was not created: %w", output, err)
	}
	if fi.Size() == 0 {
		return "", fmt.Errorf("backup file %s is empty; archiving failed inside the container", output)
	}

	if cfg.Verbose {
		entries, err := archive.Inspect(outPath, stdout)
		if err != nil {
			return "", fmt.Errorf("listing %s: %w", output, err)
		}
		archive.PrintEntries(stdout, entries, cfg.ListLimit)
	}

	log.Info("backed up volume %q to %s (%d bytes)", name, output, fi.Size())
	return outPath, nil
}

// volumeNotFound builds the error for a missing backup source, including the
// names of the volumes that do exist.
func volumeNotFound(ctx context.Context, client dockerapi.Client, name string) error {
	vols, err := client.ListVolumes(ctx)
	if err != nil || len(vols) == 0 {
		return fmt.Errorf("volume %q not found (no volumes available)", name)
	}
	names := make([]string, 0, len(vols))
	for _, v := range vols {
		names = append(names, v.Name)
	}
	return fmt.Errorf("volume %q not found; available volumes: %s", name, strings.Join(names, ", "))
}
