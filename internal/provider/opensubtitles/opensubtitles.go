// Package opensubtitles implements the opensubtitles.org catalog: a direct
// multi-criteria search service queried over its REST endpoint, hash-verified
// candidates first.
package opensubtitles

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/provider"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// ProviderName keys hashes, logs and metrics for this catalog.
const ProviderName = "opensubtitles"

// Provider queries the opensubtitles search service.
type Provider struct {
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates an opensubtitles provider.
func NewProvider() *Provider {
	return &Provider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        slog.With("provider", ProviderName),
	}
}

// Name returns the catalog name.
func (p *Provider) Name() string {
	return ProviderName
}

// Initialize is a no-op; the search endpoint is sessionless.
func (p *Provider) Initialize(ctx context.Context) error {
	return nil
}

// Terminate is a no-op.
func (p *Provider) Terminate(ctx context.Context) error {
	return nil
}

// BuildCriteria assembles the ordered candidate search-parameter sets for a
// video: content hash first (most precise), then IMDB id, then free-text
// query. A video yielding none of the three is a contract violation.
func BuildCriteria(v *video.Video, languages []subtitle.Language) ([]Criteria, error) {
	var criteria []Criteria

	if h := v.Hash(ProviderName); h != "" && v.Size > 0 {
		criteria = append(criteria, Criteria{MovieHash: h, MovieByteSize: v.Size})
	}
	if v.IMDBID > 0 {
		criteria = append(criteria, Criteria{IMDBID: v.IMDBID})
	}
	switch v.Kind {
	case video.KindEpisode:
		if v.Series != "" {
			criteria = append(criteria, Criteria{
				Query:   match.StripParenthetical(v.Series),
				Season:  v.Season,
				Episode: v.Episode,
			})
		}
	case video.KindMovie:
		if v.Title != "" {
			criteria = append(criteria, Criteria{Query: v.Title})
		}
	}

	if len(criteria) == 0 {
		return nil, provider.NewError(ProviderName, provider.KindConfiguration,
			"a search requires a content hash, an imdb id or a query")
	}
	for i := range criteria {
		criteria[i].Languages = languages
	}
	return criteria, nil
}

// ListSubtitles tries each criteria set in precision order and returns the
// candidates of the first one the catalog has results for. An exhausted
// criteria list is the normal empty outcome, not an error.
func (p *Provider) ListSubtitles(ctx context.Context, v *video.Video, languages []subtitle.Language) ([]subtitle.Candidate, error) {
	criteria, err := BuildCriteria(v, languages)
	if err != nil {
		return nil, err
	}

	for _, c := range criteria {
		req, err := http.NewRequestWithContext(ctx, "GET", searchURL(c), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		results, err := p.doSearch(req)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			continue
		}

		var candidates []subtitle.Candidate
		for _, r := range results {
			lang := subtitle.FromCode(r.ISO639)
			if lang.Code == "" || !subtitle.ContainsLanguage(languages, lang) {
				continue
			}
			candidates = append(candidates, newSubtitle(r, lang))
		}
		if len(candidates) > 0 {
			p.log.Debug("Search succeeded", "candidates", len(candidates))
			return candidates, nil
		}
	}

	p.log.Debug("No subtitles found", "video", v.Name)
	return nil, nil
}
