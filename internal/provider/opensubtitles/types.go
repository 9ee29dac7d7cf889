package opensubtitles

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/subscout/subscout/internal/subtitle"
)

// Criteria is one search-parameter set. A usable set carries at least one of
// a content hash (with size), an IMDB id, or a free-text query.
type Criteria struct {
	MovieHash     string
	MovieByteSize int64
	IMDBID        int
	Query         string
	Season        int
	Episode       int
	Languages     []subtitle.Language
}

// segments renders the criteria as "field-value" path segments, sorted
// alphabetically as the catalog requires.
func (c Criteria) segments() []string {
	var segs []string
	if c.MovieHash != "" && c.MovieByteSize > 0 {
		segs = append(segs,
			"moviebytesize-"+strconv.FormatInt(c.MovieByteSize, 10),
			"moviehash-"+c.MovieHash)
	}
	if c.IMDBID > 0 {
		segs = append(segs, fmt.Sprintf("imdbid-%07d", c.IMDBID))
	}
	if c.Query != "" {
		segs = append(segs, "query-"+c.Query)
		if c.Season > 0 {
			segs = append(segs, "season-"+strconv.Itoa(c.Season))
		}
		if c.Episode > 0 {
			segs = append(segs, "episode-"+strconv.Itoa(c.Episode))
		}
	}
	if len(c.Languages) > 0 {
		codes := ""
		for i, l := range c.Languages {
			if i > 0 {
				codes += ","
			}
			codes += l.Code
		}
		segs = append(segs, "sublanguageid-"+codes)
	}
	sort.Strings(segs)
	return segs
}

// SearchResult is one row of the catalog search response. The catalog
// reports every field as a string.
type SearchResult struct {
	IDSubtitleFile     string `json:"IDSubtitleFile"`
	SubLanguageID      string `json:"SubLanguageID"`
	ISO639             string `json:"ISO639"`
	SubHearingImpaired string `json:"SubHearingImpaired"`
	MatchedBy          string `json:"MatchedBy"`
	MovieKind          string `json:"MovieKind"`
	MovieHash          string `json:"MovieHash"`
	MovieName          string `json:"MovieName"`
	MovieReleaseName   string `json:"MovieReleaseName"`
	MovieYear          string `json:"MovieYear"`
	IDMovieImdb        string `json:"IDMovieImdb"`
	SeriesSeason       string `json:"SeriesSeason"`
	SeriesEpisode      string `json:"SeriesEpisode"`
	SubtitlesLink      string `json:"SubtitlesLink"`
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
