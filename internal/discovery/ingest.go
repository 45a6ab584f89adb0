package discovery

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/supplier"
)

// Summary aggregates one discovery pass over a target list.
type Summary struct {
	SuppliersFound      int `json:"suppliers_found"`
	SuppliersCreated    int `json:"suppliers_created"`
	CountriesProcessed  int `json:"countries_processed"`
	CategoriesProcessed int `json:"categories_processed"`
}

// Ingestor resolves candidates from a source and dedups them into the
// supplier registry.
type Ingestor struct {
	registry supplier.Registry
	source   Source
}

// NewIngestor creates an Ingestor.
func NewIngestor(registry supplier.Registry, source Source) *Ingestor {
	return &Ingestor{registry: registry, source: source}
}

// Discover runs the ingestion pass for every target: resolve candidates,
// upsert each into the registry, count sightings and creations. Re-running
// with the same targets creates nothing new.
func (in *Ingestor) Discover(ctx context.Context, targets []Target) (*Summary, error) {
	if err := ValidateTargets(targets); err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("job", "discovery"))
	summary := &Summary{}
	countries := make(map[string]bool)
	categories := make(map[string]bool)

	for _, t := range targets {
		t = t.Normalize()

		candidates, err := in.source.Resolve(ctx, t.Country, t.Category)
		if err != nil {
			return nil, eris.Wrapf(err, "discovery: resolve %s/%s", t.Country, t.Category)
		}

		for _, cand := range candidates {
			_, created, err := in.registry.UpsertIfAbsent(ctx, cand)
			if err != nil {
				return nil, eris.Wrapf(err, "discovery: ingest %s", cand.CompanyName)
			}
			summary.SuppliersFound++
			if created {
				summary.SuppliersCreated++
			}
		}

		countries[t.Country] = true
		categories[t.Category] = true

		log.Debug("target processed",
			zap.String("country", t.Country),
			zap.String("category", t.Category),
			zap.Int("candidates", len(candidates)),
		)
	}

	summary.CountriesProcessed = len(countries)
	summary.CategoriesProcessed = len(categories)
	return summary, nil
}

// DiscoverTarget resolves and ingests a single target, returning the
// resolved suppliers with their created flags. Used by the launcher, which
// needs the records themselves, not just counts.
func (in *Ingestor) DiscoverTarget(ctx context.Context, t Target) ([]Resolved, error) {
	t = t.Normalize()

	candidates, err := in.source.Resolve(ctx, t.Country, t.Category)
	if err != nil {
		return nil, eris.Wrapf(err, "discovery: resolve %s/%s", t.Country, t.Category)
	}

	resolved := make([]Resolved, 0, len(candidates))
	for _, cand := range candidates {
		s, created, err := in.registry.UpsertIfAbsent(ctx, cand)
		if err != nil {
			return nil, eris.Wrapf(err, "discovery: ingest %s", cand.CompanyName)
		}
		resolved = append(resolved, Resolved{Supplier: s, Created: created})
	}
	return resolved, nil
}

// Resolved pairs an upserted supplier with whether this sighting created it.
type Resolved struct {
	Supplier *model.Supplier
	Created  bool
}
