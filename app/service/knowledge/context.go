package knowledge

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/schema"
)

// chunkSeparator delimits retrieved passages inside one context blob.
const chunkSeparator = "\n\n---\n\n"

// Searcher is the read surface the assembler needs from the store.
type Searcher interface {
	Search(ctx context.Context, query string, filter Filter, k int) ([]schema.Document, error)
}

// Assembler turns a filtered similarity search into a single context blob
// for generation. Retrieval rank order is preserved in the output.
type Assembler struct {
	searcher Searcher
	topK     int
}

func NewAssembler(searcher Searcher, topK int) *Assembler {
	return &Assembler{
		searcher: searcher,
		topK:     topK,
	}
}

// BuildContext retrieves the top chunks for the query and concatenates
// their bodies. Zero matching chunks yields an empty string, not an error;
// downstream prompts must state explicitly that no evidence was found.
func (a *Assembler) BuildContext(ctx context.Context, query string, filter Filter) (string, error) {
	docs, err := a.searcher.Search(ctx, query, filter, a.topK)
	if err != nil {
		return "", err
	}

	if len(docs) == 0 {
		return "", nil
	}

	bodies := make([]string, 0, len(docs))
	for _, doc := range docs {
		bodies = append(bodies, doc.PageContent)
	}

	return strings.Join(bodies, chunkSeparator), nil
}
