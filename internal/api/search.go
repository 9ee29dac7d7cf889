package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// Search request/response types

type CandidateResponse struct {
	Provider        string   `json:"provider"`
	ID              string   `json:"id,omitempty"`
	LanguageCode    string   `json:"language_code"`
	LanguageName    string   `json:"language_name"`
	HearingImpaired bool     `json:"hearing_impaired"`
	PageLink        string   `json:"page_link,omitempty"`
	Matches         []string `json:"matches"`
	Score           float64  `json:"score"`
}

type SearchResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Errors     map[string]string   `json:"errors,omitempty"`
}

// searchSubtitles handles GET /api/v1/search. A query names either an
// episode (series+season+episode) or a movie (title), optionally with a
// local file path to hash.
func (s *Server) searchSubtitles(c *gin.Context) {
	v, ok := s.videoFromQuery(c)
	if !ok {
		return
	}

	languages := subtitle.ParseCodes(c.Query("languages"))

	result, err := s.searchService.Search(c.Request.Context(), v, languages)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := SearchResponse{Candidates: make([]CandidateResponse, 0, len(result.Candidates))}
	for _, sc := range result.Candidates {
		info := sc.Candidate.Info()
		matches := make([]string, 0, len(sc.Matches))
		for _, a := range sc.Matches.Attributes() {
			matches = append(matches, string(a))
		}
		resp.Candidates = append(resp.Candidates, CandidateResponse{
			Provider:        info.Provider,
			ID:              info.ID,
			LanguageCode:    info.Language.Code,
			LanguageName:    info.Language.Name,
			HearingImpaired: info.HearingImpaired,
			PageLink:        info.PageLink,
			Matches:         matches,
			Score:           sc.Score,
		})
	}
	if len(result.Errors) > 0 {
		resp.Errors = make(map[string]string, len(result.Errors))
		for name, err := range result.Errors {
			resp.Errors[name] = err.Error()
		}
	}

	c.JSON(http.StatusOK, resp)
}

// videoFromQuery builds the video descriptor from query parameters. When a
// file path is given the video is scanned from disk and the remaining
// parameters override the scanned values.
func (s *Server) videoFromQuery(c *gin.Context) (*video.Video, bool) {
	var v *video.Video

	if path := c.Query("path"); path != "" {
		scanned, err := video.ScanFile(path)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		v = scanned
	} else {
		v = &video.Video{Kind: video.KindMovie, Hashes: make(map[string]string)}
	}

	if series := c.Query("series"); series != "" {
		v.Kind = video.KindEpisode
		v.Series = series
	}
	if title := c.Query("title"); title != "" {
		v.Title = title
	}
	v.Season = intQuery(c, "season", v.Season)
	v.Episode = intQuery(c, "episode", v.Episode)
	v.Year = intQuery(c, "year", v.Year)
	v.IMDBID = intQuery(c, "imdb_id", v.IMDBID)

	if v.Kind == video.KindEpisode && (v.Series == "" || v.Season <= 0 || v.Episode <= 0) {
		errorResponse(c, http.StatusBadRequest, "episode search requires series, season and episode")
		return nil, false
	}
	if v.Kind == video.KindMovie && v.Title == "" && v.Hash("opensubtitles") == "" && v.IMDBID <= 0 {
		errorResponse(c, http.StatusBadRequest, "movie search requires a title, imdb_id or file path")
		return nil, false
	}

	return v, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
