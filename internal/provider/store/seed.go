package store

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"sumbandila/internal/provider/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Record is one seed entry.
type Record struct {
	Type          string `yaml:"type"`
	Identifier    string `yaml:"identifier"`
	Name          string `yaml:"name"`
	Accreditation string `yaml:"accreditation"`
	Registered    bool   `yaml:"registered"`
	Valid         bool   `yaml:"valid"`
}

type seedFile struct {
	Providers []Record `yaml:"providers"`
}

func (r Record) provider() models.Provider {
	return models.Provider{
		Registered:    r.Registered,
		Accreditation: r.Accreditation,
		Valid:         r.Valid,
		Name:          r.Name,
	}
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) ([]Record, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse provider seed: %w", err)
	}
	for i, r := range f.Providers {
		if r.Type == "" || r.Identifier == "" {
			return nil, fmt.Errorf("provider seed entry %d: type and identifier are required", i)
		}
	}
	return f.Providers, nil
}

// DefaultSeed returns the records compiled into the binary.
func DefaultSeed() ([]Record, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads records from path, or the embedded seed when path is empty.
func LoadSeed(path string) ([]Record, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider seed %s: %w", path, err)
	}
	return ParseSeed(data)
}
