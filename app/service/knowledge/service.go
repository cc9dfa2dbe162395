package knowledge

import (
	"context"
	"net/url"
	"taxmemo/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/qdrant"
)

// Service owns the process-wide embedding client and vector store handle.
// Both are created once and shared across requests; neither is mutated
// after construction.
type Service struct {
	cfg   *config.Config
	store qdrant.Store
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	opts := []openai.Option{
		openai.WithToken(cfg.OpenAI.Embedding.Token),
		openai.WithEmbeddingModel(cfg.OpenAI.Embedding.Model),
	}
	if cfg.OpenAI.Embedding.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAI.Embedding.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, oops.Errorf("failed to create embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, oops.Errorf("failed to create embedder: %w", err)
	}

	qdrantURL, err := url.Parse(cfg.Qdrant.URL)
	if err != nil {
		return nil, oops.Errorf("failed to parse qdrant url: %w", err)
	}

	store, err := qdrant.New(
		qdrant.WithURL(*qdrantURL),
		qdrant.WithAPIKey(cfg.Qdrant.APIKey),
		qdrant.WithCollectionName(cfg.Qdrant.Collection),
		qdrant.WithEmbedder(embedder),
	)
	if err != nil {
		return nil, oops.Errorf("failed to create qdrant store: %w", err)
	}

	return &Service{
		cfg:   cfg,
		store: store,
	}, nil
}

// Search runs a facet-filtered similarity search and returns the top k
// chunks in rank order. Zero matches is a valid empty result.
func (s *Service) Search(ctx context.Context, query string, filter Filter, k int) ([]schema.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Memo.RetrievalTimeout)
	defer cancel()

	docs, err := s.store.SimilaritySearch(ctx, query, k,
		vectorstores.WithFilters(filter.qdrantFilter()))
	if err != nil {
		return nil, oops.Code("retrieval_failed").Wrapf(err, "similarity search failed")
	}

	return docs, nil
}

// AddDocuments upserts chunks into the collection. Used by ingestion only;
// the memo path never writes.
func (s *Service) AddDocuments(ctx context.Context, docs []schema.Document) ([]string, error) {
	ids, err := s.store.AddDocuments(ctx, docs)
	if err != nil {
		return nil, oops.Errorf("failed to add documents: %w", err)
	}

	return ids, nil
}
