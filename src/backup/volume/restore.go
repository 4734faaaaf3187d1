package volume

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/vientorepublic/docker-volume-backup/src/archive"
	"github.com/vientorepublic/docker-volume-backup/src/config"
	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
	"github.com/vientorepublic/docker-volume-backup/src/logging"
	"github.com/vientorepublic/docker-volume-backup/src/validate"
)

// Restore extracts the archive at input (relative to cfg.BackupDir) into the
// named volume, creating the volume if it does not exist. When the volume
// already exists the archive is extracted on top of its current contents:
// files absent from the archive are kept. That overlay behavior is
// deliberate and documented, not clear-then-extract.
func Restore(ctx context.Context, client dockerapi.Client, cfg config.Config, log logging.Logger, stdout io.Writer, name, input string) error {
	if err := validate.VolumeName(name); err != nil {
		return err
	}
	if err := validate.ArchivePath(input); err != nil {
		return err
	}

	hostDir, err := filepath.Abs(cfg.BackupDir)
	if err != nil {
		return fmt.Errorf("resolve backup directory: %w", err)
	}
	inPath := filepath.Join(hostDir, filepath.FromSlash(input))

	// Full listing doubles as the syntax check; it runs before any volume
	// is created or container started.
	var progressOut io.Writer
	if cfg.Verbose {
		progressOut = stdout
	}
	entries, err := archive.Inspect(inPath, progressOut)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		archive.PrintEntries(stdout, entries, cfg.ListLimit)
	}

	exists, err := client.VolumeExists(ctx, name)
	if err != nil {
		return fmt.Errorf("inspect volume %q: %w", name, err)
	}
	if exists {
		log.Warn("volume %q already exists; archive contents will be extracted on top of its current data", name)
	} else {
		log.Info("volume %q not found; creating it", name)
		if _, err := client.CreateVolume(ctx, name); err != nil {
			return fmt.Errorf("create volume %q: %w", name, err)
		}
	}

	spec := dockerapi.ContainerSpec{
		Image: cfg.Image,
		Cmd:   []string{"tar", "-xzf", path.Join(backupMountPath, input), "-C", volumeMountPath},
		Mounts: []dockerapi.Mount{
			{Kind: dockerapi.MountVolume, Source: name, Target: volumeMountPath},
			{Kind: dockerapi.MountBind, Source: hostDir, Target: backupMountPath, ReadOnly: true},
		},
	}
	if _, err := client.RunContainer(ctx, spec); err != nil {
		return fmt.Errorf("restore into volume %q failed: %w", name, err)
	}

	if cfg.Verbose {
		log.Info("extracted %d files into volume %q", archive.FileCount(entries), name)
	}
	log.Info("restored %s into volume %q", input, name)
	return nil
}
