package dockerapi

import "context"

// VolumeInfo models the volume attributes the tool surfaces.
type VolumeInfo struct {
	Name       string `json:"name"`
	Driver     string `json:"driver"`
	Mountpoint string `json:"mountpoint,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// ServerInfo exposes the daemon metadata used for the liveness check.
type ServerInfo struct {
	Version    string
	APIVersion string
}

// MountKind selects how a Mount is attached to the helper container.
type MountKind string

const (
	MountVolume MountKind = "volume"
	MountBind   MountKind = "bind"
)

// Mount describes one attachment for a helper container: a named volume or
// a host directory bind.
type Mount struct {
	Kind     MountKind
	Source   string
	Target   string
	ReadOnly bool
}

// ContainerSpec describes a one-shot helper container run. Cmd is always an
// argv array; nothing is ever interpolated through a shell.
type ContainerSpec struct {
	Image  string
	Cmd    []string
	Mounts []Mount
}

// RunResult is the outcome of a completed helper container.
type RunResult struct {
	ExitCode int64
	Output   string
}

// Client is a narrow interface over the Docker API used by our app.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// Server queries the daemon version; it doubles as the liveness check.
	Server(ctx context.Context) (ServerInfo, error)

	// Volumes
	VolumeExists(ctx context.Context, name string) (bool, error)
	CreateVolume(ctx context.Context, name string) (VolumeInfo, error)
	ListVolumes(ctx context.Context) ([]VolumeInfo, error)

	// RunContainer runs spec to completion, removes the container, and
	// returns its exit status and combined output. A non-zero exit is
	// returned as an error alongside the result.
	RunContainer(ctx context.Context, spec ContainerSpec) (RunResult, error)
}
