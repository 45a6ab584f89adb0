// Package sequence builds the fixed 4-stage outreach sequence for a
// supplier, resolving stage bodies through a text-generation service with a
// deterministic static fallback per stage.
package sequence

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/strategy"
)

// Builder constructs fully-resolved stage sequences.
type Builder struct {
	gen Generator
}

// NewBuilder creates a Builder over the given generator.
func NewBuilder(gen Generator) *Builder {
	return &Builder{gen: gen}
}

// BuildSequence returns the four stage definitions for a supplier with every
// body resolved. A generation failure degrades that stage to its static
// template; it never aborts the sequence, so the caller always receives a
// complete, persistable campaign.
func (b *Builder) BuildSequence(ctx context.Context, s *model.Supplier, strat strategy.Descriptor) []model.StageDefinition {
	log := zap.L().With(
		zap.String("supplier", s.CompanyName),
		zap.String("country", s.Country),
	)

	stages := make([]model.StageDefinition, 0, StageCount)
	for i, tmpl := range stageTemplates {
		body, err := b.gen.GenerateCopy(ctx, buildPrompt(tmpl, s, strat))
		if err != nil {
			log.Warn("stage copy generation failed, using static template",
				zap.String("stage_type", string(tmpl.Type)),
				zap.Error(err),
			)
			body = fallbackBody(tmpl, s, strat)
		}

		stages = append(stages, model.StageDefinition{
			StageIndex: i + 1,
			Type:       tmpl.Type,
			Subject:    subjectFor(tmpl.Type, s),
			Body:       body,
			OffsetDays: tmpl.OffsetDays,
		})
	}
	return stages
}
