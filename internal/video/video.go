// Package video describes the media the user has: an episode or a movie,
// identified by its metadata and optional per-catalog content hashes.
package video

import (
	"github.com/subscout/subscout/internal/match"
)

// Kind discriminates between the two video variants.
type Kind int

const (
	KindEpisode Kind = iota
	KindMovie
)

func (k Kind) String() string {
	switch k {
	case KindEpisode:
		return "episode"
	case KindMovie:
		return "movie"
	default:
		return "unknown"
	}
}

// Video is an immutable descriptor of a movie or TV episode. Episode-only
// fields (Series, Season, Episode, TVDBID) are zero for movies. A zero field
// means the information is unknown and never matches anything.
type Video struct {
	Kind Kind

	// Episode fields
	Series  string
	Season  int
	Episode int
	TVDBID  int

	// Common fields
	Title        string
	Year         int
	ReleaseGroup string
	Resolution   string
	Format       string
	VideoCodec   string
	AudioCodec   string
	IMDBID       int

	// Hashes maps a catalog name to the content hash it understands.
	Hashes map[string]string
	Size   int64

	// Name is the file name the video was scanned from, if any.
	Name string
}

// Hash returns the content hash recorded for the given catalog, or "".
func (v *Video) Hash(catalog string) string {
	if v.Hashes == nil {
		return ""
	}
	return v.Hashes[catalog]
}

// ReleaseInfo returns the video's release properties as a comparison target
// for guess extraction over catalog release strings.
func (v *Video) ReleaseInfo() match.Release {
	return match.Release{
		Title:        v.Title,
		Year:         v.Year,
		Season:       v.Season,
		Episode:      v.Episode,
		ReleaseGroup: v.ReleaseGroup,
		Resolution:   v.Resolution,
		Format:       v.Format,
		VideoCodec:   v.VideoCodec,
		AudioCodec:   v.AudioCodec,
	}
}
