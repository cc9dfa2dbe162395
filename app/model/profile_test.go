package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDecode(t *testing.T) {
	body := `{
		"businessName": "Acme BV",
		"industry": "SaaS",
		"companySize": "11-50",
		"primaryJurisdiction": "Netherlands",
		"taxQueries": ["Corporate income tax implications"],
		"companies": [
			{"id": "c1", "name": "Acme Holding", "country": "Netherlands", "type": "Holding"}
		],
		"relationships": [
			{"id": "r1", "sourceId": "c1", "targetId": "c2", "type": "Ownership", "percentage": "100"}
		],
		"selectedLegalTopics": ["employment-law"],
		"legalTopicData": {
			"employment-law": {
				"hire-employees": "Yes",
				"employee-count": "5",
				"contract-types": ["permanent", "freelance"]
			}
		}
	}`

	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(body), &profile))

	assert.Equal(t, "Acme BV", profile.BusinessName)
	assert.Equal(t, "Netherlands", profile.PrimaryJurisdiction)
	assert.Equal(t, CompanyHolding, profile.Companies[0].Type)
	assert.Equal(t, "c1", profile.Relationships[0].SourceID)
	assert.Equal(t, "c2", profile.Relationships[0].TargetID)
	assert.Equal(t, "100", profile.Relationships[0].Percentage)

	answers := profile.TopicData(TopicEmploymentLaw)
	assert.Equal(t, "Yes", answers.Get("hire-employees"))
	assert.Equal(t, "5", answers.Get("employee-count"))
	assert.Equal(t, []string{"permanent", "freelance"}, answers["contract-types"].List)
}

func TestProfileDecodeAbsentFields(t *testing.T) {
	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(`{}`), &profile))

	assert.Empty(t, profile.BusinessName)
	assert.Empty(t, profile.TaxQueries)
	assert.Empty(t, profile.SelectedLegalTopics)
	assert.NotNil(t, profile.TopicData(TopicCorporateLaw))
}

func TestAnswerValueToleratesOddShapes(t *testing.T) {
	var answers TopicAnswers
	require.NoError(t, json.Unmarshal([]byte(`{"employee-count": 5, "remote": true}`), &answers))

	assert.Equal(t, "5", answers.Get("employee-count"))
	assert.Equal(t, "true", answers.Get("remote"))
}

func TestCompanyByIDDanglingReference(t *testing.T) {
	profile := Profile{
		Companies: []Company{{ID: "c1", Name: "Acme"}},
	}

	assert.NotNil(t, profile.CompanyByID("c1"))
	assert.Nil(t, profile.CompanyByID("missing"))
}

func TestSectionTitles(t *testing.T) {
	assert.Equal(t, "Executive Summary", SectionExecutiveSummary.Title())
	assert.Equal(t, "Next Steps & Action Plan", SectionNextSteps.Title())
}

func TestStubs(t *testing.T) {
	status := StatusStub("No primary jurisdiction provided")
	assert.Equal(t, SectionResult{"status": "No primary jurisdiction provided"}, status)

	stub := ErrorStub("Failed to generate CIT data.", assert.AnError)
	assert.Equal(t, "Failed to generate CIT data.", stub["error"])
	assert.Equal(t, assert.AnError.Error(), stub["details"])
}

func TestLegalTopicDisplayName(t *testing.T) {
	assert.Equal(t, "Employment Law", TopicEmploymentLaw.DisplayName())
	assert.Equal(t, "Banking Payments", TopicBankingPayments.DisplayName())
	assert.True(t, TopicCorporateLaw.Known())
	assert.False(t, LegalTopic("space-law").Known())
}
