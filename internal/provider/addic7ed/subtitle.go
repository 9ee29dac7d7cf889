package addic7ed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// Subtitle is one addic7ed candidate: the season listing row the catalog
// reported, normalized.
type Subtitle struct {
	subtitle.Subtitle

	Series       string
	Season       int
	Episode      int
	Title        string
	Year         int
	Version      string
	Corrected    bool
	HD           bool
	DownloadLink string
}

// ComputeMatches compares the candidate against an episode video. Every
// comparison is independent; a failed one contributes nothing. A non-episode
// video yields an empty set.
func (s *Subtitle) ComputeMatches(v *video.Video) match.Set {
	matches := match.NewSet()
	if v.Kind != video.KindEpisode {
		slog.Debug("Candidate kind mismatch", "provider", ProviderName, "video_kind", v.Kind.String())
		return matches
	}

	// series
	if v.Series != "" && match.FuzzyEqual(v.Series, s.Series) {
		matches.Add(match.AttrSeries)
	}
	// season
	if v.Season > 0 && s.Season == v.Season {
		matches.Add(match.AttrSeason)
	}
	// episode
	if v.Episode > 0 && s.Episode == v.Episode {
		matches.Add(match.AttrEpisode)
	}
	// title
	if v.Title != "" && match.FuzzyEqual(v.Title, s.Title) {
		matches.Add(match.AttrTitle)
	}
	// year, only when both sides report one
	if v.Year > 0 && s.Year > 0 && s.Year == v.Year {
		matches.Add(match.AttrYear)
	}
	// release attributes, by containment in the free-text version string
	if match.ContainsFold(s.Version, v.ReleaseGroup) {
		matches.Add(match.AttrReleaseGroup)
	}
	if match.ContainsFold(s.Version, v.Resolution) {
		matches.Add(match.AttrResolution)
	}
	if match.ContainsFold(s.Version, v.Format) {
		matches.Add(match.AttrFormat)
	}
	if match.ContainsFold(s.Version, v.VideoCodec) {
		matches.Add(match.AttrVideoCodec)
	}
	if match.ContainsFold(s.Version, v.AudioCodec) {
		matches.Add(match.AttrAudioCodec)
	}
	// the version string is not a full filename; recover what containment
	// missed by guessing properties from it
	matches.AddAll(match.GuessMatches(v.ReleaseInfo(), s.Version))

	return matches
}

// query resolves the series to a show id, browses the season listing and
// returns the rows that pass the language and episode filters.
func (p *Provider) query(ctx context.Context, languages []subtitle.Language, series string, season, episode, year int) ([]subtitle.Candidate, error) {
	index, err := p.showIndex(ctx)
	if err != nil {
		return nil, err
	}

	res := p.resolveShowID(ctx, index, series, year)
	if res.showID == 0 {
		p.log.Info("Series not found", "series", series, "year", year)
		return nil, nil
	}

	subYear := 0
	if res.withYear {
		subYear = year
	}

	doc, err := p.get(ctx, fmt.Sprintf("/show/%d&season=%d", res.showID, season), nil)
	if err != nil {
		return nil, err
	}

	var candidates []subtitle.Candidate
	for _, row := range parseEpisodeRows(doc) {
		lang, ok := subtitle.FromName(row.language)
		if !ok {
			p.log.Debug("Unknown language", "name", row.language)
			continue
		}
		if row.episode != episode || !subtitle.ContainsLanguage(languages, lang) {
			continue
		}
		candidates = append(candidates, &Subtitle{
			Subtitle: subtitle.Subtitle{
				Provider:        ProviderName,
				Language:        lang,
				HearingImpaired: row.hearingImpaired,
				PageLink:        p.server + row.pageLink,
			},
			// The resolved lookup form ("show name (2020)", a condensed
			// name) is an internal key; candidates carry the series as
			// queried so it compares against the video.
			Series:       series,
			Season:       row.season,
			Episode:      row.episode,
			Title:        row.title,
			Year:         subYear,
			Version:      row.version,
			Corrected:    row.corrected,
			HD:           row.hd,
			DownloadLink: row.downloadLink,
		})
	}

	p.log.Debug("Season listing filtered", "show_id", res.showID, "season", season,
		"episode", episode, "candidates", len(candidates))
	return candidates, nil
}
