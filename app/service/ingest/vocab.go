package ingest

import (
	"path/filepath"
	"strings"
)

const defaultTopic = "general"

// topicRules map filename keywords to the topic facet vocabulary used by
// retrieval filters. First matching rule wins, so more specific tax topics
// come before the broader legal ones.
var topicRules = []struct {
	tag      string
	keywords []string
}{
	{"corporate_income_tax", []string{"corporate_income", "corporate-income", "cit", "income_tax", "income-tax"}},
	{"vat", []string{"vat", "gst", "sales_tax", "value-added"}},
	{"withholding_tax", []string{"withholding"}},
	{"transfer_pricing", []string{"transfer_pricing", "transfer-pricing"}},
	{"permanent_establishment", []string{"permanent_establishment", "permanent-establishment"}},
	{"substance_requirements", []string{"substance"}},
	{"payroll_tax", []string{"payroll"}},
	{"employment_law", []string{"employment", "labor", "labour"}},
	{"corporate_law", []string{"corporate_law", "corporate-law", "entity", "incorporation", "corporate"}},
	{"intellectual_property", []string{"intellectual_property", "intellectual-property", "patent", "trademark"}},
	{"data_protection", []string{"data_protection", "data-protection", "gdpr", "privacy"}},
	{"immigration", []string{"immigration", "visa"}},
	{"banking_payments", []string{"banking", "payment", "financial"}},
	{"licensing_permits", []string{"licensing", "licence", "license", "permits"}},
	{"contract_law", []string{"contract"}},
	{"real_estate", []string{"real_estate", "real-estate", "property"}},
	{"dispute_resolution", []string{"dispute", "arbitration"}},
	{"environmental_law", []string{"environmental", "environment"}},
	{"social_security", []string{"social_security", "social-security", "insurance"}},
	{"timeline", []string{"timeline", "setup", "process"}},
	{"costs", []string{"cost", "fee", "pricing"}},
	{"risk", []string{"risk"}},
}

// countryAliases is ordered so multi-word names match before their
// two-letter codes. Two-letter codes only match as path segments, not as
// substrings, to avoid tagging "description.pdf" as spain.
var countryAliases = []struct {
	alias   string
	country string
	exact   bool
}{
	{"netherlands", "netherlands", false},
	{"nederland", "netherlands", false},
	{"dutch", "netherlands", false},
	{"deutschland", "germany", false},
	{"germany", "germany", false},
	{"german", "germany", false},
	{"france", "france", false},
	{"french", "france", false},
	{"belgium", "belgium", false},
	{"belgian", "belgium", false},
	{"united_kingdom", "united_kingdom", false},
	{"united-kingdom", "united_kingdom", false},
	{"britain", "united_kingdom", false},
	{"ireland", "ireland", false},
	{"espana", "spain", false},
	{"spain", "spain", false},
	{"italia", "italy", false},
	{"italy", "italy", false},
	{"switzerland", "switzerland", false},
	{"swiss", "switzerland", false},
	{"denmark", "denmark", false},
	{"sweden", "sweden", false},
	{"austria", "austria", false},
	{"poland", "poland", false},
	{"czech", "czech_republic", false},
	{"nl", "netherlands", true},
	{"de", "germany", true},
	{"fr", "france", true},
	{"be", "belgium", true},
	{"uk", "united_kingdom", true},
	{"ie", "ireland", true},
	{"es", "spain", true},
	{"it", "italy", true},
	{"ch", "switzerland", true},
	{"dk", "denmark", true},
	{"se", "sweden", true},
	{"at", "austria", true},
	{"pl", "poland", true},
	{"cz", "czech_republic", true},
}

// DetectTopic derives the topic facet from a file path. Unmatched files get
// the "general" tag so they still surface in unfiltered retrieval.
func DetectTopic(path string) string {
	filename := strings.ToLower(filepath.Base(path))

	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(filename, keyword) {
				return rule.tag
			}
		}
	}

	return defaultTopic
}

// DetectCountry derives the country facet from a file path. An empty result
// means no country was detected; such chunks carry no country facet and are
// excluded by every country-filtered query.
func DetectCountry(path string) string {
	lowered := strings.ToLower(path)
	segments := splitSegments(lowered)

	for _, entry := range countryAliases {
		if entry.exact {
			for _, segment := range segments {
				if segment == entry.alias {
					return entry.country
				}
			}
			continue
		}

		if strings.Contains(lowered, entry.alias) {
			return entry.country
		}
	}

	return ""
}

// splitSegments breaks a path into word tokens: directory names plus the
// underscore/hyphen separated parts of the file name without extension.
func splitSegments(path string) []string {
	ext := filepath.Ext(path)
	trimmed := strings.TrimSuffix(path, ext)

	return strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/' || r == '\\' || r == '_' || r == '-' || r == '.' || r == ' '
	})
}
