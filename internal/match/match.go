// Package match defines the attribute vocabulary shared between videos and
// subtitle candidates, and the match sets produced when comparing them.
package match

import (
	"sort"
	"strings"
)

// Attribute is one comparable property of a video.
type Attribute string

const (
	AttrSeries       Attribute = "series"
	AttrSeason       Attribute = "season"
	AttrEpisode      Attribute = "episode"
	AttrTitle        Attribute = "title"
	AttrYear         Attribute = "year"
	AttrReleaseGroup Attribute = "release_group"
	AttrResolution   Attribute = "resolution"
	AttrFormat       Attribute = "format"
	AttrVideoCodec   Attribute = "video_codec"
	AttrAudioCodec   Attribute = "audio_codec"
	AttrHash         Attribute = "hash"
	AttrIMDBID       Attribute = "imdb_id"
	AttrTVDBID       Attribute = "tvdb_id"
)

// EpisodeAttributes is the closed vocabulary for episode matching.
var EpisodeAttributes = []Attribute{
	AttrReleaseGroup, AttrResolution, AttrFormat, AttrVideoCodec, AttrAudioCodec,
	AttrIMDBID, AttrHash, AttrSeries, AttrTVDBID, AttrSeason, AttrEpisode,
	AttrTitle, AttrYear,
}

// MovieAttributes is the closed vocabulary for movie matching.
var MovieAttributes = []Attribute{
	AttrReleaseGroup, AttrResolution, AttrFormat, AttrVideoCodec, AttrAudioCodec,
	AttrIMDBID, AttrHash, AttrTitle, AttrYear,
}

// Set is a set of matched attributes for one (video, candidate) pair. The
// matcher builds a fresh set per comparison; consumers only read it.
type Set map[Attribute]struct{}

// NewSet creates a Set containing the given attributes.
func NewSet(attrs ...Attribute) Set {
	s := make(Set, len(attrs))
	for _, a := range attrs {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts an attribute into the set.
func (s Set) Add(a Attribute) {
	s[a] = struct{}{}
}

// Has reports whether the attribute is in the set.
func (s Set) Has(a Attribute) bool {
	_, ok := s[a]
	return ok
}

// AddAll inserts every attribute from other.
func (s Set) AddAll(other Set) {
	for a := range other {
		s[a] = struct{}{}
	}
}

// Attributes returns the set contents in stable (sorted) order.
func (s Set) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(s))
	for a := range s {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i] < attrs[j] })
	return attrs
}

func (s Set) String() string {
	attrs := s.Attributes()
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = string(a)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
