package vectorindex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// metaSidecar is the Go-side header FaissGpuIndex.Save writes alongside the
// native index body. The native write/read calls own the body's format
// entirely (spec §6); this sidecar only round-trips the Config and trained
// flag the wrapper itself is responsible for, the same division of labor
// as pkg/storage's loader.go keeping its own JSON envelope around an
// opaque payload.
type metaSidecar struct {
	Config  Config `yaml:"config"`
	Trained bool   `yaml:"trained"`
}

func sidecarPath(path string) string { return path + ".meta.yaml" }

func writeMetaSidecar(path string, meta metaSidecar) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling index metadata: %w", err)
	}
	return os.WriteFile(sidecarPath(path), data, 0o644)
}

func readMetaSidecar(path string) (metaSidecar, error) {
	var meta metaSidecar
	data, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		return meta, fmt.Errorf("reading index metadata: %w", err)
	}
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("unmarshaling index metadata: %w", err)
	}
	return meta, nil
}
