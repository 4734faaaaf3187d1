package dockerapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

// RealClient wraps the official Docker Go client.
type RealClient struct {
	c *client.Client
}

// Connect builds a client from the standard environment (DOCKER_HOST etc.),
// negotiating the API version with the daemon.
func Connect() (*RealClient, error) {
	c, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &RealClient{c: c}, nil
}

func (r *RealClient) Server(ctx context.Context) (ServerInfo, error) {
	v, err := r.c.ServerVersion(ctx)
	if err != nil {
		return ServerInfo{}, err
	}
	return ServerInfo{Version: v.Version, APIVersion: v.APIVersion}, nil
}

func (r *RealClient) VolumeExists(ctx context.Context, name string) (bool, error) {
	_, err := r.c.VolumeInspect(ctx, name)
	if err != nil {
		if client.IsErrNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RealClient) CreateVolume(ctx context.Context, name string) (VolumeInfo, error) {
	v, err := r.c.VolumeCreate(ctx, volume.CreateOptions{Name: name})
	if err != nil {
		return VolumeInfo{}, err
	}
	return VolumeInfo{Name: v.Name, Driver: v.Driver, Mountpoint: v.Mountpoint, CreatedAt: v.CreatedAt}, nil
}

func (r *RealClient) ListVolumes(ctx context.Context) ([]VolumeInfo, error) {
	resp, err := r.c.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, err
	}
	out := make([]VolumeInfo, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		out = append(out, VolumeInfo{Name: v.Name, Driver: v.Driver, Mountpoint: v.Mountpoint, CreatedAt: v.CreatedAt})
	}
	return out, nil
}

func (r *RealClient) RunContainer(ctx context.Context, spec ContainerSpec) (RunResult, error) {
	mounts := make([]mount.Mount, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		typ := mount.TypeVolume
		if m.Kind == MountBind {
			typ = mount.TypeBind
		}
		mounts = append(mounts, mount.Mount{Type: typ, Source: m.Source, Target: m.Target, ReadOnly: m.ReadOnly})
	}
	cfg := &container.Config{Image: spec.Image, Cmd: spec.Cmd}
	host := &container.HostConfig{Mounts: mounts}

	created, err := r.c.ContainerCreate(ctx, cfg, host, nil, nil, "")
	if client.IsErrNotFound(err) {
		// Image is not present locally; pull it and retry once, the way
		// `docker run` would.
		if pullErr := r.pullImage(ctx, spec.Image); pullErr != nil {
			return RunResult{}, pullErr
		}
		created, err = r.c.ContainerCreate(ctx, cfg, host, nil, nil, "")
	}
	if err != nil {
		return RunResult{}, fmt.Errorf("create container: %w", err)
	}
	id := created.ID
	defer func() {
		_ = r.c.ContainerRemove(context.Background(), id, container.RemoveOptions{Force: true})
	}()

	if err := r.c.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return RunResult{}, fmt.Errorf("start container: %w", err)
	}

	// No timeout here: an unresponsive daemon blocks the invocation.
	waitCh, errCh := r.c.ContainerWait(ctx, id, container.WaitConditionNotRunning)
	var status container.WaitResponse
	select {
	case status = <-waitCh:
	case err := <-errCh:
		return RunResult{}, fmt.Errorf("wait for container: %w", err)
	}

	output, _ := r.containerOutput(ctx, id)
	res := RunResult{ExitCode: status.StatusCode, Output: output}
	if status.StatusCode != 0 {
		return res, fmt.Errorf("container exited with status %d: %s", status.StatusCode, strings.TrimSpace(output))
	}
	return res, nil
}

func (r *RealClient) pullImage(ctx context.Context, ref string) error {
	rc, err := r.c.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	defer rc.Close()
	// Drain the pull progress stream; completion is what matters.
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	return nil
}

func (r *RealClient) containerOutput(ctx context.Context, id string) (string, error) {
	rc, err := r.c.ContainerLogs(ctx, id, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return "", err
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, rc); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}
