package strategy

// builtinCatalog is the default country catalog, shipped with the binary so
// the engine works without any external dataset. A YAML catalog loaded via
// NewSelectorFromFile takes precedence.
var builtinCatalog = Catalog{
	Version: "builtin-2026.1",
	Default: Descriptor{
		Approach:           "generic direct",
		KeyTalkingPoints:   []string{"market expansion", "revenue growth", "reliable partnership"},
		CommunicationStyle: "professional and direct",
		PreferredTitles:    []string{"CEO", "Sales Director", "Business Development Manager"},
	},
	Countries: map[string]Descriptor{
		"china": {
			Approach:           "relationship-first",
			KeyTalkingPoints:   []string{"long-term partnership", "mutual benefit", "market access in North America", "face and reputation"},
			CommunicationStyle: "formal and respectful, relationship before business",
			PreferredTitles:    []string{"General Manager", "Export Director", "Chairman"},
		},
		"india": {
			Approach:           "value-and-growth",
			KeyTalkingPoints:   []string{"scalable volumes", "competitive margins", "technology adoption", "global reach"},
			CommunicationStyle: "warm and enthusiastic, detail-oriented",
			PreferredTitles:    []string{"Managing Director", "Export Head", "Proprietor"},
		},
		"germany": {
			Approach:           "precision-and-process",
			KeyTalkingPoints:   []string{"quality standards", "process reliability", "certifications", "efficiency gains"},
			CommunicationStyle: "direct, factual, thoroughly documented",
			PreferredTitles:    []string{"Geschäftsführer", "Vertriebsleiter", "Head of Export"},
		},
		"japan": {
			Approach:           "consensus-building",
			KeyTalkingPoints:   []string{"proven track record", "stability", "group benefit", "meticulous quality"},
			CommunicationStyle: "highly formal, patient, indirect",
			PreferredTitles:    []string{"Daihyō Torishimariyaku", "Bucho", "Export Manager"},
		},
		"brazil": {
			Approach:           "personal-connection",
			KeyTalkingPoints:   []string{"growth opportunity", "flexibility", "regional leadership"},
			CommunicationStyle: "friendly and personal, optimistic",
			PreferredTitles:    []string{"Diretor Comercial", "CEO", "Gerente de Exportação"},
		},
		"vietnam": {
			Approach:           "opportunity-focused",
			KeyTalkingPoints:   []string{"manufacturing capacity", "cost advantage", "rising quality standards"},
			CommunicationStyle: "polite and pragmatic",
			PreferredTitles:    []string{"Director", "Export Sales Manager"},
		},
		"mexico": {
			Approach:           "trust-building",
			KeyTalkingPoints:   []string{"nearshoring advantage", "logistics speed", "trade agreement benefits"},
			CommunicationStyle: "courteous and relationship-oriented",
			PreferredTitles:    []string{"Director General", "Gerente de Ventas"},
		},
		"south_korea": {
			Approach:           "speed-and-innovation",
			KeyTalkingPoints:   []string{"innovation edge", "fast execution", "brand prestige"},
			CommunicationStyle: "formal, hierarchy-aware, results-driven",
			PreferredTitles:    []string{"Daepyo", "Sales Team Leader", "Export Director"},
		},
	},
}
