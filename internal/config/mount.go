package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultMountPath = "/etc/cytomat"
	variantFile      = "variant"
	racksFile        = "racks.yaml"
)

type mountedConfig struct {
	variant   string
	racksFile string
}

// tryLoadFromMount reads settings from a mounted config directory (e.g. a Kubernetes ConfigMap).
// A missing directory or file is not an error - it allows fallback to env vars.
func tryLoadFromMount() (mountedConfig, error) {
	var mc mountedConfig

	mountPath := os.Getenv("CYTOMAT_CONFIG_PATH")
	if mountPath == "" {
		mountPath = defaultMountPath
	}

	// Check if config directory exists
	if _, err := os.Stat(mountPath); os.IsNotExist(err) {
		return mc, nil
	}

	// Read variant
	data, err := os.ReadFile(filepath.Join(mountPath, variantFile))
	if err != nil && !os.IsNotExist(err) {
		return mc, err
	}
	mc.variant = strings.TrimSpace(string(data))

	// Racks file is only referenced, rack.LoadFile parses it
	racksPath := filepath.Join(mountPath, racksFile)
	if _, err := os.Stat(racksPath); err == nil {
		mc.racksFile = racksPath
	}

	return mc, nil
}
