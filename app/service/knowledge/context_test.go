package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"
)

type searchFunc func(ctx context.Context, query string, filter Filter, k int) ([]schema.Document, error)

func (f searchFunc) Search(ctx context.Context, query string, filter Filter, k int) ([]schema.Document, error) {
	return f(ctx, query, filter, k)
}

func TestBuildContextJoinsInRankOrder(t *testing.T) {
	searcher := searchFunc(func(_ context.Context, _ string, _ Filter, k int) ([]schema.Document, error) {
		assert.Equal(t, 3, k)
		return []schema.Document{
			{PageContent: "first chunk"},
			{PageContent: "second chunk"},
			{PageContent: "third chunk"},
		}, nil
	})

	blob, err := NewAssembler(searcher, 3).BuildContext(context.Background(), "vat rules", Filter{Country: "netherlands"})
	require.NoError(t, err)
	assert.Equal(t, "first chunk\n\n---\n\nsecond chunk\n\n---\n\nthird chunk", blob)
}

func TestBuildContextEmptyResult(t *testing.T) {
	searcher := searchFunc(func(context.Context, string, Filter, int) ([]schema.Document, error) {
		return nil, nil
	})

	blob, err := NewAssembler(searcher, 3).BuildContext(context.Background(), "anything", Filter{Country: "narnia"})
	require.NoError(t, err)
	assert.Equal(t, "", blob)
}

func TestBuildContextPropagatesSearchError(t *testing.T) {
	searcher := searchFunc(func(context.Context, string, Filter, int) ([]schema.Document, error) {
		return nil, errors.New("store unreachable")
	})

	_, err := NewAssembler(searcher, 3).BuildContext(context.Background(), "anything", Filter{Country: "netherlands"})
	assert.Error(t, err)
}
