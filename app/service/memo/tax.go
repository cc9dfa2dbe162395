package memo

import (
	"context"
	"fmt"
	"strings"
	"taxmemo/app/model"
	"taxmemo/app/service/generate"
	"taxmemo/app/service/knowledge"

	"github.com/elliotchance/pie/v2"
)

const (
	keyCIT = "corporate_income_tax"
	keyVAT = "vat_compliance"
)

// taxSection runs the per-query tax sub-workers. Each sub-worker owns its
// failure handling, so one failing never touches the other's result.
func (s *Service) taxSection(ctx context.Context, profile *model.Profile) model.SectionResult {
	result := model.SectionResult{}

	if len(profile.TaxQueries) == 0 || profile.PrimaryJurisdiction == "" {
		return result
	}

	if pie.Contains(profile.TaxQueries, TriggerCIT) {
		result[keyCIT] = s.corporateIncomeTax(ctx, profile)
	}

	if pie.Contains(profile.TaxQueries, TriggerVAT) {
		result[keyVAT] = s.vatCompliance(ctx, profile)
	}

	return result
}

func (s *Service) corporateIncomeTax(ctx context.Context, profile *model.Profile) any {
	industry := profile.Industry
	if industry == "" {
		industry = "company"
	}

	query := fmt.Sprintf("Corporate income tax rules for a %s company in %s.",
		industry, profile.PrimaryJurisdiction)
	if profile.SpecificConcerns != "" {
		query += " Specific concerns: " + profile.SpecificConcerns
	}

	filter := knowledge.BuildFilter(profile.PrimaryJurisdiction, keyCIT)

	contextBlob, err := s.contexts.BuildContext(ctx, query, filter)
	if err != nil {
		logWorkerFailure("corporate_income_tax", err)
		return model.ErrorStub("Failed to generate CIT data.", err)
	}

	var section generate.CITSection

	err = s.generator.Generate(ctx, generate.Request{
		Schema:  generate.CITSchema,
		Task:    "Please generate the JSON for the Corporate Income Tax section.",
		Context: contextBlob,
		Facts: []generate.Fact{
			{Name: "Industry", Value: profile.Industry},
			{Name: "Business Size", Value: profile.CompanySize},
		},
	}, &section)
	if err != nil {
		logWorkerFailure("corporate_income_tax", err)
		return model.ErrorStub("Failed to generate CIT data.", err)
	}

	return section
}

func (s *Service) vatCompliance(ctx context.Context, profile *model.Profile) any {
	transactionTypes := "general business activities"
	if len(profile.TransactionTypes) > 0 {
		transactionTypes = strings.Join(profile.TransactionTypes, ", ")
	}

	query := fmt.Sprintf("VAT rules in %s for the following transaction types: %s. Are OSS rules applicable?",
		profile.PrimaryJurisdiction, transactionTypes)

	filter := knowledge.BuildFilter(profile.PrimaryJurisdiction, "vat")

	contextBlob, err := s.contexts.BuildContext(ctx, query, filter)
	if err != nil {
		logWorkerFailure("vat_compliance", err)
		return model.ErrorStub("Failed to generate VAT data.", err)
	}

	var section generate.VATSection

	err = s.generator.Generate(ctx, generate.Request{
		Schema:  generate.VATSchema,
		Task:    "Please generate the JSON for the VAT section. Focus on the user's transaction types.",
		Context: contextBlob,
		Facts: []generate.Fact{
			{Name: "Transaction Types", Value: transactionTypes},
			{Name: "Industry", Value: profile.Industry},
		},
	}, &section)
	if err != nil {
		logWorkerFailure("vat_compliance", err)
		return model.ErrorStub("Failed to generate VAT data.", err)
	}

	return section
}
