package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vientorepublic/docker-volume-backup/src/archive"
	"github.com/vientorepublic/docker-volume-backup/src/validate"
)

func newVerifyCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that a backup file is a readable gzip tar archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			file := args[0]
			if err := validate.ArchivePath(file); err != nil {
				return err
			}
			var progressOut io.Writer
			if cfg.Verbose {
				progressOut = stdout
			}
			entries, err := archive.Inspect(filepath.Join(cfg.BackupDir, filepath.FromSlash(file)), progressOut)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				archive.PrintEntries(stdout, entries, cfg.ListLimit)
			}
			fmt.Fprintf(stdout, "%s: ok, %d entries (%d files)\n", file, len(entries), archive.FileCount(entries))
			return nil
		},
	}
}
