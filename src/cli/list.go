package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vientorepublic/docker-volume-backup/src/catalog"
	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list [volumes|backups]",
		Short: "List Docker volumes or local backup archives",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			kind := "volumes"
			if len(args) == 1 {
				kind = strings.ToLower(args[0])
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			switch kind {
			case "volumes":
				ctx := cmdContext(cmd)
				client, err := connectDocker(ctx)
				if err != nil {
					return err
				}
				vols, err := client.ListVolumes(ctx)
				if err != nil {
					return err
				}
				return renderVolumes(stdout, vols, output)
			case "backups":
				entries, err := catalog.Scan(cfg.BackupDir)
				if err != nil {
					return err
				}
				return renderBackups(stdout, entries, output)
			default:
				return fmt.Errorf("unknown list kind %q (expected volumes or backups)", kind)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderVolumes(w io.Writer, vols []dockerapi.VolumeInfo, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vols)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDRIVER")
		for _, v := range vols {
			fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Driver)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported --output: %s", output)
	}
}

func renderBackups(w io.Writer, entries []catalog.Entry, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "VOLUME\tTIMESTAMP\tSIZE\tFILE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Volume, e.Timestamp.Format("2006-01-02 15:04:05"), e.Size, e.File)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported --output: %s", output)
	}
}
