package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider writes files under a base directory and serves them from a
// static route.
type LocalProvider struct {
	baseDir string
	baseURL string
}

func NewLocalProvider(baseDir, baseURL string) *LocalProvider {
	if baseURL == "" {
		baseURL = "/files"
	}
	return &LocalProvider{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *LocalProvider) Name() string { return "local" }

func (p *LocalProvider) Upload(key string, data []byte, contentType string) (string, error) {
	path := filepath.Join(p.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return p.baseURL + "/" + key, nil
}
