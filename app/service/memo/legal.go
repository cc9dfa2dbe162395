package memo

import (
	"context"
	"fmt"
	"taxmemo/app/model"
	"taxmemo/app/service/knowledge"
)

const contextSummaryLimit = 200

// legalSection iterates every selected topic independently. A failing topic
// stores its own error stub and leaves sibling topics untouched.
func (s *Service) legalSection(ctx context.Context, profile *model.Profile) model.SectionResult {
	if profile.PrimaryJurisdiction == "" || len(profile.SelectedLegalTopics) == 0 {
		return model.StatusStub("No legal topics or jurisdiction provided")
	}

	result := model.SectionResult{}

	for _, topic := range profile.SelectedLegalTopics {
		result[string(topic)] = s.legalTopic(ctx, profile, topic)
	}

	return result
}

func (s *Service) legalTopic(ctx context.Context, profile *model.Profile, topic model.LegalTopic) any {
	answers := profile.TopicData(topic)

	query := fmt.Sprintf("Legal requirements for %s in %s",
		topic.DisplayName(), profile.PrimaryJurisdiction)

	if topic == model.TopicEmploymentLaw && answers.Get("hire-employees") == "Yes" {
		if count := answers.Get("employee-count"); count != "" {
			query += fmt.Sprintf(" for hiring %s employees", count)
		} else {
			query += " for hiring employees"
		}
	}

	filter := knowledge.BuildFilter(profile.PrimaryJurisdiction, string(topic))

	contextBlob, err := s.contexts.BuildContext(ctx, query, filter)
	if err != nil {
		logWorkerFailure("legal/"+string(topic), err)
		return model.ErrorStub(fmt.Sprintf("Failed to generate data for %s.", topic), err)
	}

	return model.SectionResult{
		"status":          "Implementation pending",
		"context_summary": summarizeContext(contextBlob),
	}
}

func summarizeContext(blob string) string {
	if len(blob) > contextSummaryLimit {
		return blob[:contextSummaryLimit] + "..."
	}
	return blob
}
