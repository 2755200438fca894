package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a site spec from a YAML file.
func Load(path string) (*SiteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var s SiteSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &s, nil
}

// LoadProject loads a site spec from a project directory.
// It looks for site.yaml in the given directory.
func LoadProject(projectDir string) (*SiteSpec, error) {
	specPath := filepath.Join(projectDir, "site.yaml")
	return Load(specPath)
}
