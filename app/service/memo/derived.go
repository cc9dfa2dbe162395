package memo

import (
	"context"
	"fmt"
	"taxmemo/app/model"
	"taxmemo/app/service/generate"
)

const noJurisdictionStatus = "No primary jurisdiction provided"

// executiveSummary is composed from profile fields alone. It never calls
// out, so it has no failure path.
func (s *Service) executiveSummary(_ context.Context, profile *model.Profile) model.SectionResult {
	industry := profile.Industry
	if industry == "" {
		industry = "company"
	}

	jurisdiction := profile.PrimaryJurisdiction
	if jurisdiction == "" {
		jurisdiction = "the target market"
	}

	return model.SectionResult{
		"primary_recommendation": fmt.Sprintf(
			"Based on your profile as a '%s' company, we recommend establishing a legal entity for your entry into %s.",
			industry, jurisdiction),
		"timeline":             "3-4 weeks",
		"initial_investment":   "To be determined based on structure",
		"liability_protection": "Full legal protection with proper entity setup",
		"key_strategic_benefits": []generate.Strategy{
			{Name: "Tax Optimization", Description: "Access to tax treaties and optimization strategies."},
			{Name: "Market Credibility", Description: "A full legal entity in the target market."},
		},
	}
}

func (s *Service) marketEntry(_ context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" {
		return model.StatusStub(noJurisdictionStatus)
	}
	return model.StatusStub("Pending implementation for Market Entry Options...")
}

func (s *Service) timeline(_ context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" {
		return model.StatusStub(noJurisdictionStatus)
	}
	return model.StatusStub("Pending implementation...")
}

func (s *Service) costs(_ context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" {
		return model.StatusStub(noJurisdictionStatus)
	}
	return model.StatusStub("Pending implementation...")
}

func (s *Service) risk(_ context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" {
		return model.StatusStub(noJurisdictionStatus)
	}
	return model.StatusStub("Pending implementation...")
}

func (s *Service) nextSteps(_ context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" {
		return model.StatusStub(noJurisdictionStatus)
	}
	return model.StatusStub("Pending implementation...")
}
