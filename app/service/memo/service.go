package memo

import (
	"context"
	"log/slog"
	"taxmemo/app/config"
	"taxmemo/app/model"
	"taxmemo/app/service/generate"
	"taxmemo/app/service/knowledge"
	"time"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type workerFunc func(ctx context.Context, profile *model.Profile) model.SectionResult

// Service is the memo orchestrator. Workers are pure functions of the
// profile plus the two read-only external surfaces, so they can run
// concurrently up to the configured limit.
type Service struct {
	cfg       *config.Config
	contexts  ContextBuilder
	generator Generator
	workers   map[model.Section]workerFunc
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	store := do.MustInvoke[*knowledge.Service](di)
	gen := do.MustInvoke[*generate.Service](di)

	return newService(cfg, knowledge.NewAssembler(store, cfg.Memo.TopK), gen), nil
}

func newService(cfg *config.Config, contexts ContextBuilder, generator Generator) *Service {
	s := &Service{
		cfg:       cfg,
		contexts:  contexts,
		generator: generator,
	}

	s.workers = map[model.Section]workerFunc{
		model.SectionExecutiveSummary: s.executiveSummary,
		model.SectionMarketEntry:      s.marketEntry,
		model.SectionTax:              s.taxSection,
		model.SectionLegal:            s.legalSection,
		model.SectionTimeline:         s.timeline,
		model.SectionCosts:            s.costs,
		model.SectionRisk:             s.risk,
		model.SectionNextSteps:        s.nextSteps,
	}

	return s
}

// GenerateMemo derives the plan, runs every planned worker and assembles
// the results in plan order. It never fails: section-level failures are
// already stubs by the time they reach assembly, so the memo is always
// complete with exactly one entry per planned section.
func (s *Service) GenerateMemo(ctx context.Context, profile *model.Profile) model.Memo {
	started := time.Now()
	plan := BuildPlan(profile)

	slog.Info("running memo orchestrator",
		"business", profile.BusinessName,
		"sections", len(plan))

	type planned struct {
		section model.Section
		worker  workerFunc
		result  model.SectionResult
	}

	entries := make([]*planned, 0, len(plan))
	for _, section := range plan {
		worker, ok := s.workers[section]
		if !ok {
			slog.Warn("no worker registered for section", "section", section.Title())
			continue
		}
		entries = append(entries, &planned{section: section, worker: worker})
	}

	var group errgroup.Group
	group.SetLimit(s.cfg.Memo.MaxParallelSections)

	for _, entry := range entries {
		group.Go(func() error {
			entry.result = entry.worker(ctx, profile)
			return nil
		})
	}

	// Workers never return errors, Wait is purely the synchronization point.
	_ = group.Wait()

	memo := make(model.Memo, len(entries))
	for _, entry := range entries {
		memo[entry.section.Title()] = entry.result
	}

	slog.Info("memo orchestration complete",
		"business", profile.BusinessName,
		"sections", len(memo),
		"duration", time.Since(started))

	return memo
}
