package model

// Section enumerates every memo section the planner can emit. The enum,
// not the title string, is the dispatch key everywhere inside the service.
type Section int

const (
	SectionExecutiveSummary Section = iota
	SectionMarketEntry
	SectionTax
	SectionLegal
	SectionTimeline
	SectionCosts
	SectionRisk
	SectionNextSteps
)

var sectionTitles = map[Section]string{
	SectionExecutiveSummary: "Executive Summary",
	SectionMarketEntry:      "Market Entry Options Analysis",
	SectionTax:              "Tax & Regulatory Compliance",
	SectionLegal:            "Legal & Business Topics",
	SectionTimeline:         "Implementation Timeline",
	SectionCosts:            "Resource Requirements & Costs",
	SectionRisk:             "Risk Assessment",
	SectionNextSteps:        "Next Steps & Action Plan",
}

// Title is the exact section name used as the Memo key on the wire.
func (s Section) Title() string {
	return sectionTitles[s]
}

// SectionResult maps result keys to either a schema-conforming value, a
// status stub or an error stub. Every planned section produces exactly one.
type SectionResult map[string]any

// Memo is the final deliverable: section title -> section result.
type Memo map[string]SectionResult

// StatusStub is the deterministic guard-not-met result. Guard misses are
// not errors, so the stub carries a status, not an error key.
func StatusStub(status string) SectionResult {
	return SectionResult{"status": status}
}

// ErrorStub converts an external-call failure into the wire error shape.
func ErrorStub(message string, err error) SectionResult {
	return SectionResult{"error": message, "details": err.Error()}
}
