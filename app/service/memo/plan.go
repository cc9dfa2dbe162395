package memo

import "taxmemo/app/model"

// BuildPlan derives the memo's table of contents from the profile. Rules
// run in a fixed order: the summary always opens, the three gated sections
// appear only when their profile fields are present and the four planning
// sections always close the memo. Pure function, no error conditions.
func BuildPlan(profile *model.Profile) []model.Section {
	plan := []model.Section{model.SectionExecutiveSummary}

	if profile.PrimaryJurisdiction != "" {
		plan = append(plan, model.SectionMarketEntry)
	}

	if len(profile.TaxQueries) > 0 {
		plan = append(plan, model.SectionTax)
	}

	if len(profile.SelectedLegalTopics) > 0 {
		plan = append(plan, model.SectionLegal)
	}

	return append(plan,
		model.SectionTimeline,
		model.SectionCosts,
		model.SectionRisk,
		model.SectionNextSteps,
	)
}
