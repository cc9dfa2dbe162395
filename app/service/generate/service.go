package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"taxmemo/app/config"
	"time"

	_ "embed"

	"github.com/samber/do"
	"github.com/samber/oops"
	"github.com/sashabaranov/go-openai"
)

//go:embed system_prompt.txt
var systemPromptTemplate string

//go:embed user_prompt_template.txt
var userPromptTemplate string

// emptyContextNotice replaces the context block when retrieval returned
// nothing, so the model is told explicitly that the evidence size is zero
// instead of being left to fabricate.
const emptyContextNotice = "No reference material was retrieved for this query. " +
	"The knowledge base holds no matching passages; state insufficient evidence where a field cannot be answered."

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service invokes the language model and enforces schema conformance on its
// output. It never converts failures into stubs - that is the caller's
// responsibility.
type Service struct {
	cfg    *config.Config
	client chatClient
	model  string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	clientConfig := openai.DefaultConfig(cfg.OpenAI.Chat.Token)
	if cfg.OpenAI.Chat.BaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAI.Chat.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.Memo.GenerationTimeout + 10*time.Second,
	}

	return &Service{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAI.Chat.Model,
	}, nil
}

// Generate calls the model and unmarshals the validated JSON into out.
// Any failure (upstream call, malformed output, schema violation) is
// returned as an error carrying the generation_failed code.
func (s *Service) Generate(ctx context.Context, req Request, out any) error {
	if req.Schema == nil {
		return oops.Errorf("generation request has no target schema")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Memo.GenerationTimeout)
	defer cancel()

	aiResponse, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: buildSystemPrompt(req.Schema),
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildUserPrompt(req),
				},
			},
			MaxCompletionTokens: 2000,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return oops.Code("generation_failed").Wrapf(err, "failed to create chat completion")
	}

	if len(aiResponse.Choices) == 0 {
		return oops.Code("generation_failed").Errorf("no chat completion found")
	}

	raw := stripFences(aiResponse.Choices[0].Message.Content)

	if err = req.Schema.validate([]byte(raw)); err != nil {
		return oops.Code("generation_failed").Wrapf(err, "model output does not conform")
	}

	if err = json.Unmarshal([]byte(raw), out); err != nil {
		return oops.Code("generation_failed").Wrapf(err, "failed to unmarshal model output")
	}

	return nil
}

func buildSystemPrompt(schema *Schema) string {
	return strings.ReplaceAll(systemPromptTemplate, "{schema}", string(schema.raw))
}

func buildUserPrompt(req Request) string {
	contextBlock := req.Context
	if strings.TrimSpace(contextBlock) == "" {
		contextBlock = emptyContextNotice
	}

	var facts strings.Builder
	for _, fact := range req.Facts {
		value := fact.Value
		if value == "" {
			value = "Not specified"
		}
		facts.WriteString(fmt.Sprintf("- %s: %s\n", fact.Name, value))
	}

	templateValues := map[string]string{
		"context": contextBlock,
		"facts":   strings.TrimRight(facts.String(), "\n"),
		"task":    req.Task,
	}

	prompt := userPromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", value)
	}

	return prompt
}

func stripFences(result string) string {
	result = strings.TrimSpace(result)
	result = strings.Trim(result, "`")
	result = strings.TrimSpace(result)
	result = strings.TrimPrefix(result, "json")
	return strings.TrimSpace(result)
}
