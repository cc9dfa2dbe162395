package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"taxmemo/app/config"
	"taxmemo/app/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context, profile *model.Profile) model.Memo

func (f runnerFunc) GenerateMemo(ctx context.Context, profile *model.Profile) model.Memo {
	return f(ctx, profile)
}

func testServer(runner memoRunner) *Server {
	return newServer(&config.Config{
		Server: config.Server{Addr: ":0"},
	}, runner)
}

func TestLiveness(t *testing.T) {
	srv := testServer(runnerFunc(func(context.Context, *model.Profile) model.Memo {
		return model.Memo{}
	}))

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "Tax Memo API is running"}`, string(body))
}

func TestGenerateMemoEndpoint(t *testing.T) {
	var seen *model.Profile
	srv := testServer(runnerFunc(func(_ context.Context, profile *model.Profile) model.Memo {
		seen = profile
		return model.Memo{
			"Executive Summary": model.SectionResult{"primary_recommendation": "ok"},
		}
	}))

	req := httptest.NewRequest("POST", "/generate_memo",
		strings.NewReader(`{"businessName": "Acme BV", "primaryJurisdiction": "Netherlands"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	require.NotNil(t, seen)
	assert.Equal(t, "Acme BV", seen.BusinessName)
	assert.Equal(t, "Netherlands", seen.PrimaryJurisdiction)

	var result map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ok", result["Executive Summary"]["primary_recommendation"])
}

func TestGenerateMemoMalformedBody(t *testing.T) {
	called := false
	srv := testServer(runnerFunc(func(context.Context, *model.Profile) model.Memo {
		called = true
		return nil
	}))

	req := httptest.NewRequest("POST", "/generate_memo", strings.NewReader(`{"businessName":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
	assert.False(t, called, "orchestrator must not run on malformed input")
}
