package config

// Config carries the per-invocation settings. It is built once at startup
// from defaults, an optional YAML file, and command-line flags, then passed
// explicitly to every operation handler; there is no global state.
type Config struct {
	// Image is the helper image used to run tar inside a container.
	Image string `yaml:"image"`
	// BackupDir is the directory archives are written to and read from.
	// It is bind-mounted into the helper container.
	BackupDir string `yaml:"backup_dir"`
	// ListLimit caps how many archive entries verbose mode prints before
	// collapsing the rest into a count.
	ListLimit int `yaml:"list_limit"`

	// Verbose is set from the command line, never from the file.
	Verbose bool `yaml:"-"`
}

// DefaultImage is the helper image used when neither the config file nor
// the --image flag overrides it. It only needs a POSIX shell environment
// with tar and gzip.
const DefaultImage = "alpine:latest"

// DefaultListLimit is the default number of archive entries shown in
// verbose listings.
const DefaultListLimit = 20

func Default() Config {
	return Config{
		Image:     DefaultImage,
		BackupDir: ".",
		ListLimit: DefaultListLimit,
	}
}
