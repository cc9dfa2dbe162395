package ingest

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"taxmemo/app/config"
	"taxmemo/app/service/knowledge"

	"github.com/samber/do"
	"github.com/samber/oops"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

// Service populates the knowledge collection from a documents directory.
// It is the only writer; the memo path reads only.
type Service struct {
	cfg      *config.Config
	store    *knowledge.Service
	splitter textsplitter.TextSplitter
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	store := do.MustInvoke[*knowledge.Service](di)

	return &Service{
		cfg:   cfg,
		store: store,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.Ingest.ChunkSize),
			textsplitter.WithChunkOverlap(cfg.Ingest.ChunkOverlap),
		),
	}, nil
}

// Run walks the directory, chunks every supported file, tags topic and
// country facets from the file path and upserts everything in one batch.
// A single unreadable file is logged and skipped, not fatal.
func (s *Service) Run(ctx context.Context, dir string) error {
	if dir == "" {
		dir = s.cfg.Ingest.DocumentsDir
	}

	if _, err := os.Stat(dir); err != nil {
		return oops.Wrapf(err, "documents directory not found: %s", dir)
	}

	var chunks []schema.Document

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		fileChunks, err := s.loadFile(ctx, path)
		if err != nil {
			slog.Warn("skipping unreadable document", "path", path, "error", err)
			return nil
		}
		if fileChunks == nil {
			return nil
		}

		tagChunks(fileChunks, path)
		chunks = append(chunks, fileChunks...)

		slog.Info("loaded document",
			"path", path,
			"chunks", len(fileChunks),
			"topic", DetectTopic(path),
			"country", DetectCountry(path))
		return nil
	})
	if err != nil {
		return oops.Wrapf(err, "failed to walk documents directory")
	}

	if len(chunks) == 0 {
		slog.Warn("no supported documents found", "dir", dir)
		return nil
	}

	slog.Info("ingesting chunks", "count", len(chunks))

	if _, err = s.store.AddDocuments(ctx, chunks); err != nil {
		return oops.Wrapf(err, "failed to ingest chunks")
	}

	slog.Info("ingestion complete", "chunks", len(chunks))
	return nil
}

// loadFile returns nil chunks for unsupported extensions.
func (s *Service) loadFile(ctx context.Context, path string) ([]schema.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return documentloaders.NewText(file).LoadAndSplit(ctx, s.splitter)

	case ".pdf":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return nil, err
		}

		return documentloaders.NewPDF(file, info.Size()).LoadAndSplit(ctx, s.splitter)

	default:
		return nil, nil
	}
}

func tagChunks(chunks []schema.Document, path string) {
	topic := DetectTopic(path)
	country := DetectCountry(path)
	source := filepath.Base(path)

	for i := range chunks {
		if chunks[i].Metadata == nil {
			chunks[i].Metadata = map[string]any{}
		}
		chunks[i].Metadata["topic"] = topic
		chunks[i].Metadata["source_file"] = source
		if country != "" {
			chunks[i].Metadata["country"] = country
		}
	}
}
