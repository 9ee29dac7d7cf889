package opensubtitles

import (
	"log/slog"
	"regexp"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// seriesRe splits the catalog's combined episode name, e.g.
// `"Show Name" Episode Title`.
var seriesRe = regexp.MustCompile(`^"(.*)" (.*)$`)

// Subtitle is one opensubtitles candidate.
type Subtitle struct {
	subtitle.Subtitle

	MatchedBy        string
	MovieKind        string
	Hash             string
	MovieName        string
	MovieReleaseName string
	MovieYear        int
	MovieIMDBID      int
	SeriesSeason     int
	SeriesEpisode    int
}

func newSubtitle(r SearchResult, lang subtitle.Language) *Subtitle {
	return &Subtitle{
		Subtitle: subtitle.Subtitle{
			Provider:        ProviderName,
			ID:              r.IDSubtitleFile,
			Language:        lang,
			HearingImpaired: atoiOrZero(r.SubHearingImpaired) != 0,
			PageLink:        r.SubtitlesLink,
		},
		MatchedBy:        r.MatchedBy,
		MovieKind:        r.MovieKind,
		Hash:             r.MovieHash,
		MovieName:        r.MovieName,
		MovieReleaseName: r.MovieReleaseName,
		MovieYear:        atoiOrZero(r.MovieYear),
		MovieIMDBID:      atoiOrZero(r.IDMovieImdb),
		SeriesSeason:     atoiOrZero(r.SeriesSeason),
		SeriesEpisode:    atoiOrZero(r.SeriesEpisode),
	}
}

// SeriesName is the series part of the combined episode name, or "".
func (s *Subtitle) SeriesName() string {
	if m := seriesRe.FindStringSubmatch(s.MovieName); m != nil {
		return m[1]
	}
	return ""
}

// SeriesTitle is the episode-title part of the combined episode name, or "".
func (s *Subtitle) SeriesTitle() string {
	if m := seriesRe.FindStringSubmatch(s.MovieName); m != nil {
		return m[2]
	}
	return ""
}

// ComputeMatches compares the candidate against the video. The reported kind
// must agree with the video's kind; a mismatch is a zero-confidence result,
// not a failure.
func (s *Subtitle) ComputeMatches(v *video.Video) match.Set {
	matches := match.NewSet()

	kindOK := (v.Kind == video.KindEpisode && s.MovieKind == "episode") ||
		(v.Kind == video.KindMovie && s.MovieKind == "movie")
	if !kindOK {
		slog.Debug("Candidate kind mismatch", "provider", ProviderName,
			"movie_kind", s.MovieKind, "video_kind", v.Kind.String())
		return matches
	}

	// hash, against the hash recorded for this catalog
	if h := v.Hash(ProviderName); h != "" && s.Hash != "" && s.Hash == h {
		matches.Add(match.AttrHash)
	}
	// imdb id
	if v.IMDBID > 0 && v.IMDBID == s.MovieIMDBID {
		matches.Add(match.AttrIMDBID)
	}

	switch v.Kind {
	case video.KindEpisode:
		if v.Series != "" && match.FuzzyEqual(v.Series, s.SeriesName()) {
			matches.Add(match.AttrSeries)
		}
		// year is never matched here: the catalog reports the episode
		// airdate year, not the series year
		if v.Season > 0 && v.Season == s.SeriesSeason {
			matches.Add(match.AttrSeason)
		}
		if v.Episode > 0 && v.Episode == s.SeriesEpisode {
			matches.Add(match.AttrEpisode)
		}
		if v.Title != "" && match.FuzzyEqual(v.Title, s.SeriesTitle()) {
			matches.Add(match.AttrTitle)
		}
		matches.AddAll(match.GuessMatches(v.ReleaseInfo(), s.MovieReleaseName))
	case video.KindMovie:
		if v.Title != "" && match.FuzzyEqual(v.Title, s.MovieName) {
			matches.Add(match.AttrTitle)
		}
		if v.Year > 0 && v.Year == s.MovieYear {
			matches.Add(match.AttrYear)
		}
		matches.AddAll(match.GuessMatches(v.ReleaseInfo(), s.MovieReleaseName))
	}

	return matches
}
