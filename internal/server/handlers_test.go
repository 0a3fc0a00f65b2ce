package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dormanator/trending-sentiments/internal/config"
	"github.com/Dormanator/trending-sentiments/internal/domain"
)

type fakeAnalyzer struct {
	report *domain.Report
	err    error
	query  string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, query string) (*domain.Report, error) {
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func newTestServer(analyzer domain.Analyzer) *Server {
	cfg := &config.Config{Port: "0", AppEnv: "test"}
	return NewServer(cfg, analyzer, nil)
}

func doRequest(srv *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func sampleReport() *domain.Report {
	return &domain.Report{
		Query:     "#go",
		SampleID:  uuid.New(),
		FetchedAt: time.Date(2021, 3, 14, 12, 0, 0, 0, time.UTC),
		Posts: []domain.Post{{
			ID:             "1",
			DisplayText:    "hello",
			AnalysisText:   "hello",
			SentimentScore: 0.5,
			SentimentLabel: domain.LabelPositive,
		}},
	}
}

func TestHandleAnalyze_OK(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	rec := doRequest(newTestServer(analyzer), "/api/analyze?q=%23go")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#go", analyzer.query)

	var body struct {
		NoResults bool           `json:"no_results"`
		Report    *domain.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.NoResults)
	require.NotNil(t, body.Report)
	assert.Equal(t, "#go", body.Report.Query)
	require.Len(t, body.Report.Posts, 1)
	assert.Equal(t, domain.LabelPositive, body.Report.Posts[0].SentimentLabel)
}

func TestHandleAnalyze_MissingQuery(t *testing.T) {
	rec := doRequest(newTestServer(&fakeAnalyzer{}), "/api/analyze")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_BlankQuery(t *testing.T) {
	rec := doRequest(newTestServer(&fakeAnalyzer{}), "/api/analyze?q=%20%20")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_NoResults(t *testing.T) {
	analyzer := &fakeAnalyzer{report: &domain.Report{Query: "obscure"}}
	rec := doRequest(newTestServer(analyzer), "/api/analyze?q=obscure")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		NoResults bool `json:"no_results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.NoResults)
}

func TestHandleAnalyze_RateLimited(t *testing.T) {
	analyzer := &fakeAnalyzer{err: domain.ErrSearchRateLimited}
	rec := doRequest(newTestServer(analyzer), "/api/analyze?q=x")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleAnalyze_ScorerMismatch(t *testing.T) {
	analyzer := &fakeAnalyzer{err: domain.ErrScoreCountMismatch}
	rec := doRequest(newTestServer(analyzer), "/api/analyze?q=x")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleAnalyze_InternalError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("boom")}
	rec := doRequest(newTestServer(analyzer), "/api/analyze?q=x")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The cause must not leak into the response body.
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHandleLiveness(t *testing.T) {
	rec := doRequest(newTestServer(&fakeAnalyzer{}), "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleReadiness_NoRedis(t *testing.T) {
	rec := doRequest(newTestServer(&fakeAnalyzer{}), "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	rec := doRequest(newTestServer(&fakeAnalyzer{}), "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["version"])
}
