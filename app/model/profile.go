package model

import "encoding/json"

type CompanyType string

const (
	CompanyHolding   CompanyType = "Holding"
	CompanyOperating CompanyType = "Operating"
	CompanyService   CompanyType = "Service"
	CompanyIP        CompanyType = "IP"
	CompanyFinancing CompanyType = "Financing"
)

type RelationshipType string

const (
	RelOwnership        RelationshipType = "Ownership"
	RelServiceAgreement RelationshipType = "Service Agreement"
	RelLicensing        RelationshipType = "Licensing"
	RelFinancing        RelationshipType = "Financing"
)

type Company struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Country string      `json:"country"`
	Type    CompanyType `json:"type"`
}

type Relationship struct {
	ID       string           `json:"id"`
	SourceID string           `json:"sourceId"`
	TargetID string           `json:"targetId"`
	Type     RelationshipType `json:"type"`
	// Percentage is only meaningful for Ownership edges. It arrives as a
	// free-form string ("100", "51.5") and is passed through as-is.
	Percentage string `json:"percentage,omitempty"`
}

// AnswerValue is a single answer in a legal topic questionnaire. The
// frontend sends either a string or a list of strings depending on the
// question type, so both shapes decode without error.
type AnswerValue struct {
	Text string
	List []string
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		v.List = list
		return nil
	}

	// Tolerate anything else (numbers, bools) by keeping the raw text.
	v.Text = string(data)
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.List != nil {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

// TopicAnswers is the free-form answer bag for one legal topic. Unknown
// question keys are kept so new frontend questions don't break decoding.
type TopicAnswers map[string]AnswerValue

func (a TopicAnswers) Get(key string) string {
	return a[key].Text
}

// Profile is the complete validated user submission driving memo
// generation. It is immutable for the duration of one orchestration run.
// Absent fields decode to zero values, never to a validation failure.
type Profile struct {
	BusinessName   string   `json:"businessName"`
	Industry       string   `json:"industry"`
	CompanySize    string   `json:"companySize"`
	CurrentMarkets []string `json:"currentMarkets"`
	EntryGoals     []string `json:"entryGoals"`
	Timeline       string   `json:"timeline"`

	PrimaryJurisdiction    string   `json:"primaryJurisdiction"`
	SecondaryJurisdictions []string `json:"secondaryJurisdictions"`
	TaxTreaties            []string `json:"taxTreaties"`

	BusinessStructure string         `json:"businessStructure"`
	Companies         []Company      `json:"companies"`
	Relationships     []Relationship `json:"relationships"`

	TaxQueries       []string `json:"taxQueries"`
	TransactionTypes []string `json:"transactionTypes"`
	SpecificConcerns string   `json:"specificConcerns"`

	SelectedLegalTopics []LegalTopic                `json:"selectedLegalTopics"`
	LegalTopicData      map[LegalTopic]TopicAnswers `json:"legalTopicData"`

	TargetMarkets        []string `json:"targetMarkets"`
	Activities           []string `json:"activities"`
	ExpectedRevenue      string   `json:"expectedRevenue"`
	EntryOption          string   `json:"entryOption"`
	CompliancePriorities []string `json:"compliancePriorities"`

	MemoName string `json:"memoName"`
}

// CompanyByID resolves a Relationship endpoint. Dangling references are
// tolerated at the boundary, so callers must handle a nil result.
func (p *Profile) CompanyByID(id string) *Company {
	for i := range p.Companies {
		if p.Companies[i].ID == id {
			return &p.Companies[i]
		}
	}
	return nil
}

// TopicData returns the answer bag for a topic, never nil.
func (p *Profile) TopicData(topic LegalTopic) TopicAnswers {
	if p.LegalTopicData == nil {
		return TopicAnswers{}
	}
	if data, ok := p.LegalTopicData[topic]; ok {
		return data
	}
	return TopicAnswers{}
}
