package generate

// Fact is one user-profile line shown to the model. Facts are a slice, not
// a map, so prompts are deterministic.
type Fact struct {
	Name  string
	Value string
}

// Request describes one schema-constrained generation: a target schema, the
// retrieved context (possibly empty) and the profile facts relevant to the
// section.
type Request struct {
	Schema  *Schema
	Task    string
	Context string
	Facts   []Fact
}

// Strategy is a tax credit or optimization strategy.
type Strategy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CITSection is the structured Corporate Income Tax result.
type CITSection struct {
	StandardRate           string     `json:"standard_rate"`
	Description            string     `json:"description"`
	OptimizationStrategies []Strategy `json:"optimization_strategies,omitempty"`
}

// VATRate is one VAT rate with its application.
type VATRate struct {
	Rate      string `json:"rate"`
	AppliesTo string `json:"applies_to"`
}

// VATSection is the structured Value-Added Tax result.
type VATSection struct {
	Rates                    []VATRate `json:"rates"`
	RegistrationRequirements string    `json:"registration_requirements"`
	OSSDetails               string    `json:"oss_details,omitempty"`
}
