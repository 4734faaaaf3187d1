package cli

import (
	"github.com/spf13/cobra"

	"github.com/vientorepublic/docker-volume-backup/src/config"
)

// addGlobalFlags adds the persistent flags shared by every subcommand.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "List archive entries while backing up and restoring")
	cmd.PersistentFlags().String("image", "", "Helper image used to run tar (default "+config.DefaultImage+")")
	cmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}

// resolveConfig builds the effective configuration: defaults, then the
// optional config file, then flags. Flags win.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if img, _ := flags.GetString("image"); img != "" {
		cfg.Image = img
	}
	cfg.Verbose, _ = flags.GetBool("verbose")
	return cfg, nil
}
