package memo

import (
	"taxmemo/app/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trailingSections = []model.Section{
	model.SectionTimeline,
	model.SectionCosts,
	model.SectionRisk,
	model.SectionNextSteps,
}

func TestBuildPlanGating(t *testing.T) {
	tests := []struct {
		name    string
		profile model.Profile
		want    []model.Section
	}{
		{
			name:    "empty profile narrows to the unconditional sections",
			profile: model.Profile{},
			want: []model.Section{
				model.SectionExecutiveSummary,
				model.SectionTimeline,
				model.SectionCosts,
				model.SectionRisk,
				model.SectionNextSteps,
			},
		},
		{
			name: "jurisdiction enables market entry",
			profile: model.Profile{
				PrimaryJurisdiction: "Netherlands",
			},
			want: []model.Section{
				model.SectionExecutiveSummary,
				model.SectionMarketEntry,
				model.SectionTimeline,
				model.SectionCosts,
				model.SectionRisk,
				model.SectionNextSteps,
			},
		},
		{
			name: "tax queries enable the tax section",
			profile: model.Profile{
				TaxQueries: []string{TriggerCIT},
			},
			want: []model.Section{
				model.SectionExecutiveSummary,
				model.SectionTax,
				model.SectionTimeline,
				model.SectionCosts,
				model.SectionRisk,
				model.SectionNextSteps,
			},
		},
		{
			name: "everything present yields the full plan",
			profile: model.Profile{
				PrimaryJurisdiction: "Netherlands",
				TaxQueries:          []string{TriggerCIT, TriggerVAT},
				SelectedLegalTopics: []model.LegalTopic{model.TopicEmploymentLaw},
			},
			want: []model.Section{
				model.SectionExecutiveSummary,
				model.SectionMarketEntry,
				model.SectionTax,
				model.SectionLegal,
				model.SectionTimeline,
				model.SectionCosts,
				model.SectionRisk,
				model.SectionNextSteps,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPlan(&tt.profile))
		})
	}
}

func TestBuildPlanTrailingSectionsAlwaysLast(t *testing.T) {
	profiles := []model.Profile{
		{},
		{PrimaryJurisdiction: "Germany"},
		{TaxQueries: []string{TriggerVAT}},
		{
			PrimaryJurisdiction: "France",
			TaxQueries:          []string{TriggerCIT},
			SelectedLegalTopics: []model.LegalTopic{model.TopicCorporateLaw, model.TopicImmigration},
		},
	}

	for _, profile := range profiles {
		plan := BuildPlan(&profile)

		require.GreaterOrEqual(t, len(plan), 5)
		assert.Equal(t, model.SectionExecutiveSummary, plan[0])
		assert.Equal(t, trailingSections, plan[len(plan)-4:])
	}
}
