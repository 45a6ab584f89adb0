package discovery

import (
	"context"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/outreach-cli/internal/supplier"
)

// Source resolves candidate suppliers for a (country, category) pair. The
// catalog implementation below reads a loaded dataset; tests and future
// integrations plug in their own.
type Source interface {
	Resolve(ctx context.Context, country, category string) ([]supplier.Candidate, error)
}

// Dataset is a versioned candidate catalog.
type Dataset struct {
	Version   string               `yaml:"version"`
	Suppliers []supplier.Candidate `yaml:"suppliers"`
}

// CatalogSource serves candidates from an in-memory dataset.
type CatalogSource struct {
	dataset Dataset
}

// NewCatalogSource returns a source over the built-in dataset.
func NewCatalogSource() *CatalogSource {
	return &CatalogSource{dataset: builtinDataset}
}

// NewCatalogSourceFromFile loads a dataset from a YAML file. An empty path
// falls back to the built-in dataset.
func NewCatalogSourceFromFile(path string) (*CatalogSource, error) {
	if path == "" {
		return NewCatalogSource(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "discovery: read dataset %s", path)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, eris.Wrapf(err, "discovery: parse dataset %s", path)
	}
	if ds.Version == "" {
		return nil, eris.Errorf("discovery: dataset %s has no version", path)
	}

	return &CatalogSource{dataset: ds}, nil
}

// Version returns the dataset version.
func (s *CatalogSource) Version() string { return s.dataset.Version }

// Resolve returns the dataset's candidates matching the country and
// category, case-insensitively.
func (s *CatalogSource) Resolve(_ context.Context, country, category string) ([]supplier.Candidate, error) {
	country = strings.ToLower(strings.TrimSpace(country))
	category = strings.ToLower(strings.TrimSpace(category))

	var out []supplier.Candidate
	for _, c := range s.dataset.Suppliers {
		if strings.ToLower(c.Country) == country && strings.ToLower(c.ProductCategory) == category {
			out = append(out, c)
		}
	}
	return out, nil
}
