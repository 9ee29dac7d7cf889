// Package search fans a video out over the configured catalogs, matches and
// scores every candidate, and reports per-catalog failures without letting
// one catalog abort the rest.
package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/metrics"
	"github.com/subscout/subscout/internal/provider"
	"github.com/subscout/subscout/internal/score"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// ScoredCandidate pairs a candidate with its match set and total score.
type ScoredCandidate struct {
	Candidate subtitle.Candidate
	Matches   match.Set
	Score     float64
}

// Result is the outcome of one multi-catalog search. Errors holds the
// per-provider failures; a failing provider contributes no candidates but
// never hides its error behind an empty result.
type Result struct {
	Candidates []ScoredCandidate
	Errors     map[string]error
}

// Service runs searches across providers.
type Service struct {
	providers []provider.Provider
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewService creates a search service. metrics may be nil.
func NewService(providers []provider.Provider, m *metrics.Metrics) *Service {
	return &Service{
		providers: providers,
		metrics:   m,
		log:       slog.With("component", "search"),
	}
}

// Search lists, matches and scores candidates for the video in the wanted
// languages across all providers concurrently. Candidates are returned
// sorted by descending score.
func (s *Service) Search(ctx context.Context, v *video.Video, languages []subtitle.Language) (*Result, error) {
	start := time.Now()

	result := &Result{Errors: make(map[string]error)}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, p := range s.providers {
		wg.Add(1)
		go func(p provider.Provider) {
			defer wg.Done()

			if s.metrics != nil {
				s.metrics.SearchesTotal.WithLabelValues(p.Name()).Inc()
			}

			candidates, err := p.ListSubtitles(ctx, v, languages)
			if err != nil {
				s.log.Error("Provider search failed", "provider", p.Name(), "error", err)
				if s.metrics != nil {
					s.metrics.SearchErrors.WithLabelValues(p.Name()).Inc()
				}
				mu.Lock()
				result.Errors[p.Name()] = err
				mu.Unlock()
				return
			}

			scored, err := s.scoreAll(v, candidates)
			if err != nil {
				mu.Lock()
				result.Errors[p.Name()] = err
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Candidates = append(result.Candidates, scored...)
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].Score > result.Candidates[j].Score
	})

	if s.metrics != nil {
		s.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}
	s.log.Info("Search finished",
		"kind", v.Kind.String(),
		"candidates", len(result.Candidates),
		"failed_providers", len(result.Errors),
		"duration", time.Since(start),
	)
	return result, nil
}

// scoreAll computes the match set and score of each candidate. Candidates
// are independent; matching order carries no meaning.
func (s *Service) scoreAll(v *video.Video, candidates []subtitle.Candidate) ([]ScoredCandidate, error) {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		matches := c.ComputeMatches(v)
		total, err := score.Calculate(matches, v.Kind)
		if err != nil {
			return nil, err
		}
		scored = append(scored, ScoredCandidate{Candidate: c, Matches: matches, Score: total})
		if s.metrics != nil {
			s.metrics.CandidatesScored.Inc()
		}
	}
	return scored, nil
}
