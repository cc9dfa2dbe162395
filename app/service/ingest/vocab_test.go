package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"documents/netherlands/corporate_income_tax_netherlands.pdf", "corporate_income_tax"},
		{"documents/netherlands/cit_overview.txt", "corporate_income_tax"},
		{"documents/netherlands/vat_netherlands.pdf", "vat"},
		{"documents/value-added-tax-guide.md", "vat"},
		{"withholding_rates.txt", "withholding_tax"},
		{"transfer-pricing-rules.pdf", "transfer_pricing"},
		{"employment_law_basics.txt", "employment_law"},
		{"labour_regulations.md", "employment_law"},
		{"entity_formation.pdf", "corporate_law"},
		{"gdpr_overview.txt", "data_protection"},
		{"visa_requirements.md", "immigration"},
		{"payment_services.pdf", "banking_payments"},
		{"license_requirements.txt", "licensing_permits"},
		{"contract_basics.md", "contract_law"},
		{"real-estate-market.pdf", "real_estate"},
		{"arbitration_guide.txt", "dispute_resolution"},
		{"environmental_rules.md", "environmental_law"},
		{"social-security-overview.pdf", "social_security"},
		{"setup_timeline.txt", "timeline"},
		{"fee_schedule.md", "costs"},
		{"risk_matrix.pdf", "risk"},
		{"misc_notes.txt", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTopic(tt.path))
		})
	}
}

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"documents/netherlands/vat.pdf", "netherlands"},
		{"dutch_payroll.txt", "netherlands"},
		{"vat_nl.txt", "netherlands"},
		{"germany/cit.pdf", "germany"},
		{"gdpr_de.md", "germany"},
		{"uk/contract_law.txt", "united_kingdom"},
		{"czech_entity_setup.pdf", "czech_republic"},
		// "description" must not match the "es" code, codes only match
		// as whole path segments
		{"description.pdf", ""},
		{"generic_tax_guide.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCountry(tt.path))
		})
	}
}
