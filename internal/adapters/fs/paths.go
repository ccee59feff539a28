package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// homeEnv overrides the parsnip data directory.
const homeEnv = "PARSNIP_HOME"

// configEnv overrides the registry file location.
const configEnv = "PARSNIP_CONFIG"

// DataDir returns the root directory for sources, artifacts and markers:
// $PARSNIP_HOME when set, otherwise ~/.local/share/parsnip.
func DataDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".local", "share", "parsnip"), nil
}

// ConfigPath returns the registry file location: $PARSNIP_CONFIG when set,
// otherwise parsnip.yaml in the working directory.
func ConfigPath(defaultName string) string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}
	return defaultName
}
