package normalize

import "github.com/gyeh/sitecards/internal/model"

var complexityRules = []rule[model.Complexity]{
	{contains("immediate"), model.Complexity{Tier: 1, Label: "Walk-through"}},
	{contains("brief"), model.Complexity{Tier: 2, Label: "Brief screen"}},
	{contains("pre-authorization"), model.Complexity{Tier: 4, Label: "Pre-auth"}},
	{contains("full"), model.Complexity{Tier: 3, Label: "Full assessment"}},
}

// SimplifyComplexity reduces an intake complexity description to a short
// label and tier. Unrecognized text is kept verbatim at tier 2; a blank cell
// is "-" at tier 0.
func SimplifyComplexity(intake string) model.Complexity {
	if blank(intake) {
		return model.Complexity{Tier: 0, Label: "-"}
	}
	return firstMatch(intake, complexityRules, model.Complexity{Tier: 2, Label: intake})
}
