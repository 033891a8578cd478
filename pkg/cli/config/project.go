package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/chent01/riskreg/pkg/domain/model"
)

// Project points at the TOML file describing the project under
// assessment and its requirements.
type Project struct {
	path string
}

// ProjectFile is the on-disk shape of a project definition
type ProjectFile struct {
	Name         string               `toml:"name" json:"name"`
	DeviceClass  string               `toml:"device-class" json:"device_class"`
	BatchSize    int                  `toml:"batch-size" json:"batch_size"`
	Requirements []*model.Requirement `toml:"requirement" json:"requirements"`
}

// Flags returns CLI flags for project configuration
func (p *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Path to the project requirements TOML file",
			Required:    true,
			Sources:     cli.EnvVars("RISKREG_PROJECT"),
			Destination: &p.path,
		},
	}
}

// Path returns the configured file path
func (p *Project) Path() string {
	return p.path
}

// Load reads and validates the project file
func (p *Project) Load() (*ProjectFile, error) {
	return LoadProjectFile(p.path)
}

// LoadProjectFile loads a project definition from a TOML or JSON file,
// selected by extension.
func LoadProjectFile(path string) (*ProjectFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read project file", goerr.V("path", path))
	}

	var file ProjectFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse project JSON", goerr.V("path", path))
		}
	} else {
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse project TOML", goerr.V("path", path))
		}
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "project validation failed", goerr.V("path", path))
	}

	return &file, nil
}

// Validate checks the project file is complete and consistent
func (f *ProjectFile) Validate() error {
	if f.Name == "" {
		return goerr.New("project name is required")
	}
	if len(f.Requirements) == 0 {
		return goerr.New("at least one requirement is required")
	}

	seen := make(map[string]bool)
	for _, req := range f.Requirements {
		if err := req.Validate(); err != nil {
			return goerr.Wrap(err, "invalid requirement")
		}
		if seen[req.ID] {
			return goerr.New("duplicate requirement ID", goerr.V("id", req.ID))
		}
		seen[req.ID] = true
	}

	return nil
}
