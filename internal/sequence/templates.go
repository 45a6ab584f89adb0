package sequence

import (
	"fmt"
	"strings"

	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/strategy"
)

// stageTemplate defines one of the four fixed touchpoints. OffsetDays is the
// delay since the previous stage.
type stageTemplate struct {
	Type       model.StageType
	Purpose    string
	OffsetDays int
}

// stageTemplates is the fixed sequence every campaign follows, in order.
var stageTemplates = []stageTemplate{
	{model.StageInitialContact, "introduce our sourcing program and open the conversation", 0},
	{model.StageValueDemonstration, "demonstrate concrete value with market data and buyer demand", 3},
	{model.StageUrgencyCreation, "create urgency around limited onboarding slots this quarter", 6},
	{model.StageClosingSequence, "ask directly for a decision and propose a call", 9},
}

// StageCount is the fixed number of stages per campaign.
var StageCount = len(stageTemplates)

// systemPrompt is the shared instruction for all stage-copy generation.
const systemPrompt = `You are a B2B outreach copywriter for an international sourcing company. You write short, culturally-adapted cold emails to suppliers.

Rules:
- Write only the email body, no subject line and no commentary
- Keep it under 180 words
- Match the requested communication style exactly
- Address the reader as a senior decision maker at the company
- Never invent facts about the supplier beyond what is provided`

// buildPrompt constructs the per-stage generation prompt from the stage
// purpose, the cultural strategy, and the supplier's attributes.
func buildPrompt(tmpl stageTemplate, s *model.Supplier, strat strategy.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the %q email of a 4-stage outreach sequence.\n", tmpl.Type)
	fmt.Fprintf(&b, "Stage purpose: %s.\n\n", tmpl.Purpose)
	fmt.Fprintf(&b, "Cultural approach: %s\n", strat.Approach)
	fmt.Fprintf(&b, "Communication style: %s\n", strat.CommunicationStyle)
	fmt.Fprintf(&b, "Key talking points: %s\n\n", strings.Join(strat.KeyTalkingPoints, "; "))
	fmt.Fprintf(&b, "Supplier: %s (%s)\n", s.CompanyName, s.Country)
	fmt.Fprintf(&b, "Product category: %s\n", s.ProductCategory)
	fmt.Fprintf(&b, "Company size class: %s\n", s.SizeClass)
	if s.AnnualRevenue != nil {
		fmt.Fprintf(&b, "Estimated annual revenue: $%d\n", *s.AnnualRevenue)
	}
	return b.String()
}

// subjectFor renders the deterministic subject line for a stage.
func subjectFor(t model.StageType, s *model.Supplier) string {
	switch t {
	case model.StageInitialContact:
		return fmt.Sprintf("Partnership opportunity for %s", s.CompanyName)
	case model.StageValueDemonstration:
		return fmt.Sprintf("North American demand for %s", lowerOrDefault(s.ProductCategory, "your products"))
	case model.StageUrgencyCreation:
		return fmt.Sprintf("%s: onboarding closes this quarter", s.CompanyName)
	case model.StageClosingSequence:
		return fmt.Sprintf("Final follow-up for %s", s.CompanyName)
	default:
		return fmt.Sprintf("Following up with %s", s.CompanyName)
	}
}

// fallbackBody renders the static stage body used when generation fails. It
// is built entirely from supplier and strategy attributes, so it is
// deterministic and leaves no placeholder unfilled.
func fallbackBody(tmpl stageTemplate, s *model.Supplier, strat strategy.Descriptor) string {
	category := lowerOrDefault(s.ProductCategory, "your products")
	points := strings.Join(strat.KeyTalkingPoints, ", ")

	switch tmpl.Type {
	case model.StageInitialContact:
		return fmt.Sprintf(
			"Hello,\n\nI lead supplier partnerships at a North American sourcing company, and %s stands out among %s producers in %s. "+
				"We focus on %s, and I believe there is a strong fit with a %s business like yours.\n\n"+
				"Would you be open to a short introduction?\n\nBest regards",
			s.CompanyName, category, s.Country, points, s.SizeClass)
	case model.StageValueDemonstration:
		return fmt.Sprintf(
			"Hello,\n\nFollowing up on my note to %s: demand for %s continues to grow in our buyer network, "+
				"and partners of your size class (%s) typically see meaningful volume in the first year. "+
				"Our program is built around %s.\n\nHappy to share specifics.\n\nBest regards",
			s.CompanyName, category, s.SizeClass, points)
	case model.StageUrgencyCreation:
		return fmt.Sprintf(
			"Hello,\n\nWe are finalizing our %s supplier roster for the coming quarter, and I would like %s to be part of it. "+
				"Onboarding slots for %s are limited, so timing matters.\n\nCan we connect this week?\n\nBest regards",
			category, s.CompanyName, s.Country)
	case model.StageClosingSequence:
		return fmt.Sprintf(
			"Hello,\n\nThis is my final note on the partnership opportunity for %s. "+
				"If expanding %s exports is a priority, I would welcome a brief call; otherwise I will close the file for now.\n\n"+
				"Either way, thank you for your time.\n\nBest regards",
			s.CompanyName, category)
	default:
		return fmt.Sprintf(
			"Hello,\n\nFollowing up with %s regarding a %s sourcing partnership.\n\nBest regards",
			s.CompanyName, category)
	}
}

func lowerOrDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return strings.ToLower(v)
}
