package dockerapi

import (
	"context"
	"sort"
)

// FakeClient is an in-memory implementation for unit tests.
type FakeClient struct {
	ServerVersionStr string
	ServerErr        error
	VolumesMap       map[string]VolumeInfo
	CreateErr        error

	// Runs records every container spec handed to RunContainer.
	Runs []ContainerSpec
	// RunHook, when set, decides the outcome of RunContainer and may
	// simulate side effects such as writing the archive file.
	RunHook func(spec ContainerSpec) (RunResult, error)
}

func NewFake() *FakeClient {
	return &FakeClient{VolumesMap: map[string]VolumeInfo{}}
}

func (f *FakeClient) Server(ctx context.Context) (ServerInfo, error) {
	if f.ServerErr != nil {
		return ServerInfo{}, f.ServerErr
	}
	return ServerInfo{Version: f.ServerVersionStr}, nil
}

func (f *FakeClient) VolumeExists(ctx context.Context, name string) (bool, error) {
	_, ok := f.VolumesMap[name]
	return ok, nil
}

func (f *FakeClient) CreateVolume(ctx context.Context, name string) (VolumeInfo, error) {
	if f.CreateErr != nil {
		return VolumeInfo{}, f.CreateErr
	}
	v := VolumeInfo{Name: name, Driver: "local"}
	f.VolumesMap[name] = v
	return v, nil
}

func (f *FakeClient) ListVolumes(ctx context.Context) ([]VolumeInfo, error) {
	out := make([]VolumeInfo, 0, len(f.VolumesMap))
	for _, v := range f.VolumesMap {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *FakeClient) RunContainer(ctx context.Context, spec ContainerSpec) (RunResult, error) {
	f.Runs = append(f.Runs, spec)
	if f.RunHook != nil {
		return f.RunHook(spec)
	}
	return RunResult{}, nil
}
