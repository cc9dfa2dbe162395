package model

import "strings"

// LegalTopic identifies one selectable legal topic. The known set below
// mirrors the frontend questionnaire; values outside it are tolerated so a
// new topic on the frontend does not require a schema break here.
type LegalTopic string

const (
	TopicCorporateLaw         LegalTopic = "corporate-law"
	TopicEmploymentLaw        LegalTopic = "employment-law"
	TopicDataProtection       LegalTopic = "data-protection"
	TopicIntellectualProperty LegalTopic = "intellectual-property"
	TopicImmigration          LegalTopic = "immigration"
	TopicBankingPayments      LegalTopic = "banking-payments"
	TopicLicensingPermits     LegalTopic = "licensing-permits"
	TopicContractLaw          LegalTopic = "contract-law"
	TopicRealEstate           LegalTopic = "real-estate"
	TopicDisputeResolution    LegalTopic = "dispute-resolution"
	TopicEnvironmentalLaw     LegalTopic = "environmental-law"
	TopicSocialSecurity       LegalTopic = "social-security"
)

var knownTopics = map[LegalTopic]struct{}{
	TopicCorporateLaw:         {},
	TopicEmploymentLaw:        {},
	TopicDataProtection:       {},
	TopicIntellectualProperty: {},
	TopicImmigration:          {},
	TopicBankingPayments:      {},
	TopicLicensingPermits:     {},
	TopicContractLaw:          {},
	TopicRealEstate:           {},
	TopicDisputeResolution:    {},
	TopicEnvironmentalLaw:     {},
	TopicSocialSecurity:       {},
}

func (t LegalTopic) Known() bool {
	_, ok := knownTopics[t]
	return ok
}

// DisplayName turns "employment-law" into "Employment Law" for queries.
func (t LegalTopic) DisplayName() string {
	words := strings.Split(string(t), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
