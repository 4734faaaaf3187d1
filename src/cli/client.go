package cli

import (
	"context"
	"fmt"

	"github.com/vientorepublic/docker-volume-backup/src/dockerapi"
)

// newDockerClient is a variable so tests can substitute a fake.
var newDockerClient = func() (dockerapi.Client, error) {
	return dockerapi.Connect()
}

// connectDocker builds a client and verifies the daemon answers. Every
// command that talks to the runtime goes through this check first.
func connectDocker(ctx context.Context) (dockerapi.Client, error) {
	client, err := newDockerClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.Server(ctx); err != nil {
		return nil, fmt.Errorf("docker daemon is not reachable: %w", err)
	}
	return client, nil
}
