package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default-config.yaml
var defaultConfig []byte

//go:embed config.schema.json
var configSchema []byte

// DefaultConfig returns the embedded default configuration YAML.
func DefaultConfig() []byte { return append([]byte(nil), defaultConfig...) }

// ConfigSchema returns the JSON Schema the merged configuration must satisfy.
func ConfigSchema() []byte { return append([]byte(nil), configSchema...) }

// WriteDefaultConfigIfMissing writes contactbook.yaml to targetDir if it does not exist.
func WriteDefaultConfigIfMissing(targetDir string) (string, error) {
	if targetDir == "" {
		return "", errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}
	p := filepath.Join(targetDir, "contactbook.yaml")
	if _, err := os.Stat(p); err == nil {
		return p, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return p, os.WriteFile(p, defaultConfig, 0o644)
}
