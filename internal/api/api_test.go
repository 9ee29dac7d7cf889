package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/provider"
	"github.com/subscout/subscout/internal/search"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

type fakeCandidate struct {
	subtitle.Subtitle
	matches match.Set
}

func (c *fakeCandidate) ComputeMatches(v *video.Video) match.Set {
	return c.matches
}

type fakeProvider struct {
	candidates []subtitle.Candidate
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Initialize(ctx context.Context) error { return nil }

func (p *fakeProvider) Terminate(ctx context.Context) error { return nil }

func (p *fakeProvider) ListSubtitles(ctx context.Context, v *video.Video, languages []subtitle.Language) ([]subtitle.Candidate, error) {
	return p.candidates, nil
}

func testServer(candidates ...subtitle.Candidate) *Server {
	svc := search.NewService([]provider.Provider{&fakeProvider{candidates: candidates}}, nil)
	return NewServer(svc, nil)
}

func doRequest(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testServer(), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSearchMovie(t *testing.T) {
	s := testServer(&fakeCandidate{
		Subtitle: subtitle.Subtitle{
			Provider: "fake",
			ID:       "7",
			Language: subtitle.FromCode("en"),
			PageLink: "https://example.org/7",
		},
		matches: match.NewSet(match.AttrTitle, match.AttrYear),
	})

	w := doRequest(t, s, "/api/v1/search?title=Man+of+Steel&year=2013&languages=en")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(resp.Candidates) != 1 {
		t.Fatalf("len(Candidates) = %d, want 1", len(resp.Candidates))
	}
	c := resp.Candidates[0]
	if c.Provider != "fake" || c.ID != "7" {
		t.Errorf("candidate = %+v", c)
	}
	if c.LanguageCode != "en" || c.LanguageName != "English" {
		t.Errorf("language = %q/%q", c.LanguageCode, c.LanguageName)
	}
	// Movie weights: title 13 + year 7.
	if c.Score != 20 {
		t.Errorf("Score = %v, want 20", c.Score)
	}
	if len(c.Matches) != 2 || c.Matches[0] != "title" || c.Matches[1] != "year" {
		t.Errorf("Matches = %v, want sorted [title year]", c.Matches)
	}
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"no parameters", "/api/v1/search"},
		{"episode missing number", "/api/v1/search?series=Show+Name&season=1"},
		{"bad path", "/api/v1/search?path=/does/not/exist.mkv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, testServer(), tt.target)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSearchEpisodeQuery(t *testing.T) {
	s := testServer()
	w := doRequest(t, s, "/api/v1/search?series=Show+Name&season=1&episode=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(resp.Candidates) != 0 {
		t.Errorf("Candidates = %v, want empty", resp.Candidates)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	svc := search.NewService(nil, nil)
	s := NewServer(svc, prometheus.NewRegistry())

	w := doRequest(t, s, "/metrics")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	// Without a registry the endpoint is absent.
	w = doRequest(t, testServer(), "/metrics")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
