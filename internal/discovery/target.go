// Package discovery resolves candidate suppliers from a configured source
// and feeds them through the registry's dedup pipeline.
package discovery

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Target is one (country, category) discovery request.
type Target struct {
	Country  string `json:"country" yaml:"country"`
	Category string `json:"category" yaml:"category"`
}

// Normalize returns the target with canonical casing and whitespace.
func (t Target) Normalize() Target {
	return Target{
		Country:  strings.ToLower(strings.TrimSpace(t.Country)),
		Category: strings.TrimSpace(t.Category),
	}
}

// ValidateTargets rejects malformed targets before any side effect, naming
// the offending entry.
func ValidateTargets(targets []Target) error {
	if len(targets) == 0 {
		return eris.New("discovery: no targets given")
	}
	for i, t := range targets {
		n := t.Normalize()
		if n.Country == "" {
			return eris.Errorf("discovery: target %d (%q, %q): country is empty", i, t.Country, t.Category)
		}
		if n.Category == "" {
			return eris.Errorf("discovery: target %d (%q, %q): category is empty", i, t.Country, t.Category)
		}
	}
	return nil
}
