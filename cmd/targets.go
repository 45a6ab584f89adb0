package main

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/discovery"
)

// parseTargets converts repeated --target flags of the form
// "country:category" into discovery targets.
func parseTargets(raw []string) ([]discovery.Target, error) {
	if len(raw) == 0 {
		return nil, eris.New("at least one --target country:category is required")
	}

	targets := make([]discovery.Target, 0, len(raw))
	for _, r := range raw {
		country, category, ok := strings.Cut(r, ":")
		if !ok {
			return nil, eris.Errorf("invalid target %q, expected country:category", r)
		}
		targets = append(targets, discovery.Target{
			Country:  strings.TrimSpace(country),
			Category: strings.TrimSpace(category),
		})
	}
	return targets, nil
}
