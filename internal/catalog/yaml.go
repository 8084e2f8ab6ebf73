package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// YAMLSource reads a project catalog from a YAML file. It exists so an
// external extraction pipeline can hand its output to the wizard through
// the same Source seam the mock uses.
type YAMLSource struct {
	path string
}

// NewYAMLSource returns a Source backed by the given catalog file.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// catalogFile is the on-disk shape: a top-level projects list.
type catalogFile struct {
	Projects []types.Project `yaml:"projects"`
}

// Projects reads and validates the catalog file. The file is read on every
// call; the wizard invokes it once per upload.
func (s *YAMLSource) Projects(ctx context.Context) ([]types.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		logging.CatalogError("catalog file unreadable: %v", err)
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		logging.CatalogError("catalog file malformed: %v", err)
		return nil, fmt.Errorf("failed to parse catalog %s: %w", s.path, err)
	}
	if len(cf.Projects) == 0 {
		return nil, fmt.Errorf("catalog %s contains no projects", s.path)
	}
	for i, p := range cf.Projects {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog %s: project %d missing id or name", s.path, i)
		}
	}

	logging.Catalog("yaml source %s returned %d projects", s.path, len(cf.Projects))
	return cf.Projects, nil
}
