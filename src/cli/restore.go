package cli

import (
	"io"

	"github.com/spf13/cobra"

	vol "github.com/vientorepublic/docker-volume-backup/src/backup/volume"
	"github.com/vientorepublic/docker-volume-backup/src/logging"
)

func newRestoreCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "restore VOLUME INPUT",
		Short: "Restore a tar.gz archive into a Docker volume",
		Long: "Extracts INPUT into VOLUME, creating the volume if it does not exist.\n" +
			"If the volume already exists the archive is extracted on top of its\n" +
			"current contents; files not present in the archive are kept.",
		Args: cobra.ExactArgs(2),
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
			log := logging.New(stderr)
			return vol.Restore(ctx, client, cfg, log, stdout, args[0], args[1])
		},
	}
}
