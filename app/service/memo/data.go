package memo

import (
	"context"
	"log/slog"
	"taxmemo/app/service/generate"
	"taxmemo/app/service/knowledge"

	"github.com/samber/oops"
)

// Trigger strings the frontend puts into taxQueries. Sub-workers run only
// when their trigger is present.
const (
	TriggerCIT = "Corporate income tax implications"
	TriggerVAT = "Value-added tax (VAT) registration and compliance"
)

// ContextBuilder is the retrieval surface a worker needs.
type ContextBuilder interface {
	BuildContext(ctx context.Context, query string, filter knowledge.Filter) (string, error)
}

// Generator is the generation surface a worker needs.
type Generator interface {
	Generate(ctx context.Context, req generate.Request, out any) error
}

// logWorkerFailure records which failure class (retrieval, generation or an
// unexpected internal error) blanked a memo part. The stub the caller
// stores looks the same either way, so the class only lives in the logs.
func logWorkerFailure(part string, err error) {
	class := "internal"
	if oopsErr, ok := oops.AsOops(err); ok && oopsErr.Code() != "" {
		class = oopsErr.Code()
	}
	slog.Error("memo worker failed",
		"part", part,
		"class", class,
		"error", err)
}
