// Package strategy maps supplier countries to fixed communication-strategy
// descriptors used to parameterize stage-content generation.
package strategy

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Descriptor is a fixed, country-keyed description of tone and approach.
// Descriptors are persisted verbatim into campaigns for audit, so selection
// must be deterministic: same country in, same descriptor out.
type Descriptor struct {
	Approach           string   `yaml:"approach" json:"approach"`
	KeyTalkingPoints   []string `yaml:"key_talking_points" json:"key_talking_points"`
	CommunicationStyle string   `yaml:"communication_style" json:"communication_style"`
	PreferredTitles    []string `yaml:"preferred_titles" json:"preferred_titles"`
}

// Catalog is a versioned set of country descriptors.
type Catalog struct {
	Version   string                `yaml:"version"`
	Default   Descriptor            `yaml:"default"`
	Countries map[string]Descriptor `yaml:"countries"`
}

// Selector performs total country → descriptor lookups against a catalog.
type Selector struct {
	catalog Catalog
}

// NewSelector returns a selector over the built-in catalog.
func NewSelector() *Selector {
	return &Selector{catalog: builtinCatalog}
}

// NewSelectorFromFile loads a catalog from a YAML file. An empty path falls
// back to the built-in catalog.
func NewSelectorFromFile(path string) (*Selector, error) {
	if path == "" {
		return NewSelector(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "strategy: read catalog %s", path)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, eris.Wrapf(err, "strategy: parse catalog %s", path)
	}
	if cat.Default.Approach == "" {
		cat.Default = builtinCatalog.Default
	}
	if cat.Version == "" {
		return nil, eris.Errorf("strategy: catalog %s has no version", path)
	}

	return &Selector{catalog: cat}, nil
}

// Version returns the catalog version.
func (s *Selector) Version() string { return s.catalog.Version }

// ForCountry returns the descriptor for a country code. Unrecognized
// countries get the generic-direct default; the lookup is total and pure.
func (s *Selector) ForCountry(country string) Descriptor {
	key := strings.ToLower(strings.TrimSpace(country))
	if d, ok := s.catalog.Countries[key]; ok {
		return d
	}
	return s.catalog.Default
}

// Snapshot returns the descriptor for a country as the audit snapshot stored
// on a campaign.
func (s *Selector) Snapshot(country string) model.StrategySnapshot {
	d := s.ForCountry(country)
	return model.StrategySnapshot{
		Country:            strings.ToLower(strings.TrimSpace(country)),
		Approach:           d.Approach,
		KeyTalkingPoints:   d.KeyTalkingPoints,
		CommunicationStyle: d.CommunicationStyle,
		PreferredTitles:    d.PreferredTitles,
		CatalogVersion:     s.catalog.Version,
	}
}
