// Package subtitle defines the catalog-independent shape of a subtitle
// candidate and the language vocabulary searches filter on.
package subtitle

import (
	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/video"
)

// Subtitle is the catalog-independent part of a candidate. Catalog packages
// embed it and add their own reported fields.
type Subtitle struct {
	// Provider is the catalog that reported the candidate.
	Provider string
	// ID is the catalog's identifier for the subtitle, when it has one.
	ID string

	Language        Language
	HearingImpaired bool
	// PageLink points at the catalog page describing the subtitle.
	PageLink string
}

// Info returns the catalog-independent candidate data.
func (s *Subtitle) Info() *Subtitle {
	return s
}

// Candidate is one subtitle a catalog reported for a search. ComputeMatches
// compares the candidate's reported attributes against a video; every
// comparison is independent and a failed one contributes nothing.
type Candidate interface {
	Info() *Subtitle
	ComputeMatches(v *video.Video) match.Set
}
