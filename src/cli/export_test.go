package cli

import "github.com/vientorepublic/docker-volume-backup/src/dockerapi"

// SetDockerClientFactory swaps the Docker client factory for tests and
// returns a function that restores the previous one.
func SetDockerClientFactory(f func() (dockerapi.Client, error)) func() {
	prev := newDockerClient
	newDockerClient = f
	return func() { newDockerClient = prev }
}
