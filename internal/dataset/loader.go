package dataset

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var datasetFS embed.FS

// Load reads an embedded dataset by name.
func Load(name string) (*Dataset, error) {
	data, err := datasetFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("dataset %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	return parse(data, name)
}

// LoadFile reads a dataset from an external YAML file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return parse(data, path)
}

// List returns the names of all embedded datasets, sorted.
func List() []string {
	entries, _ := datasetFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

func parse(data []byte, origin string) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dataset %q: %w", origin, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
