package score

import (
	"fmt"
	"sync"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/video"
)

var (
	episodeWeights = sync.OnceValues(func() (WeightMap, error) {
		return Solve(episodeEquations)
	})
	movieWeights = sync.OnceValues(func() (WeightMap, error) {
		return Solve(movieEquations)
	})
)

// Weights returns the memoized weight map for the given media kind. The
// equation systems are fixed, so the first solve is authoritative for the
// process lifetime.
func Weights(kind video.Kind) (WeightMap, error) {
	switch kind {
	case video.KindEpisode:
		return episodeWeights()
	case video.KindMovie:
		return movieWeights()
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("no equation system for kind %v", kind)}
	}
}

// Calculate totals the weights of the matched attributes. An attribute with
// no weight for the kind violates the vocabulary invariant and panics rather
// than silently scoring as zero.
func Calculate(set match.Set, kind video.Kind) (float64, error) {
	weights, err := Weights(kind)
	if err != nil {
		return 0, err
	}
	var total float64
	for attr := range set {
		w, ok := weights[attr]
		if !ok {
			panic(fmt.Sprintf("score: attribute %q has no weight for kind %v", attr, kind))
		}
		total += w
	}
	return total, nil
}
