package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	vol "github.com/vientorepublic/docker-volume-backup/src/backup/volume"
	"github.com/vientorepublic/docker-volume-backup/src/logging"
)

func newBackupCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "backup VOLUME [OUTPUT]",
		Short: "Back up a Docker volume to a tar.gz archive",
		Long: "Mounts VOLUME read-only into a helper container and archives its contents\n" +
			"into OUTPUT in the working directory. Without OUTPUT the file is named\n" +
			"<volume>_backup_<YYYYMMDD_HHMMSS>.tar.gz.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			client, err := connectDocker(ctx)
			if err != nil {
				return err
			}
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			log := logging.New(stderr)
			_, err = vol.Backup(ctx, client, cfg, log, stdout, args[0], output, time.Now())
			return err
		},
	}
}
