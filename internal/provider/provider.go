// Package provider defines the contract external subtitle catalogs implement
// and the error taxonomy they report failures through.
package provider

import (
	"context"
	"errors"

	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

// ErrNotFound marks the normal "no subtitles found" condition. It is not a
// failure; callers treat it as an empty result.
var ErrNotFound = errors.New("not found")

// Provider is one external subtitle catalog.
type Provider interface {
	// Name returns the catalog name used in hashes, logs and metrics.
	Name() string
	// Initialize establishes the catalog session (login, token).
	Initialize(ctx context.Context) error
	// Terminate tears the session down.
	Terminate(ctx context.Context) error
	// ListSubtitles returns candidates for the video in the wanted
	// languages. An unresolvable query yields an empty slice, not an error.
	ListSubtitles(ctx context.Context, v *video.Video, languages []subtitle.Language) ([]subtitle.Candidate, error)
}
