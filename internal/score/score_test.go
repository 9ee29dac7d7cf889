package score

import (
	"errors"
	"math"
	"testing"

	"github.com/subscout/subscout/internal/match"
	"github.com/subscout/subscout/internal/video"
)

const weightEpsilon = 1e-6

func TestEpisodeWeights(t *testing.T) {
	weights, err := Weights(video.KindEpisode)
	if err != nil {
		t.Fatalf("Weights(KindEpisode) error = %v", err)
	}

	want := map[match.Attribute]float64{
		match.AttrVideoCodec:   1,
		match.AttrAudioCodec:   2,
		match.AttrResolution:   4,
		match.AttrFormat:       4,
		match.AttrReleaseGroup: 8,
		match.AttrSeries:       20,
		match.AttrYear:         20,
		match.AttrSeason:       20,
		match.AttrEpisode:      20,
		match.AttrTitle:        40,
		match.AttrTVDBID:       40,
		match.AttrHash:         79,
		match.AttrIMDBID:       80,
	}
	if len(weights) != len(want) {
		t.Errorf("len(weights) = %d, want %d", len(weights), len(want))
	}
	for attr, w := range want {
		got, ok := weights[attr]
		if !ok {
			t.Errorf("weights[%q] missing", attr)
			continue
		}
		if math.Abs(got-w) > weightEpsilon {
			t.Errorf("weights[%q] = %v, want %v", attr, got, w)
		}
	}
}

func TestMovieWeights(t *testing.T) {
	weights, err := Weights(video.KindMovie)
	if err != nil {
		t.Fatalf("Weights(KindMovie) error = %v", err)
	}

	want := map[match.Attribute]float64{
		match.AttrAudioCodec:   1,
		match.AttrVideoCodec:   2,
		match.AttrResolution:   2,
		match.AttrFormat:       3,
		match.AttrReleaseGroup: 6,
		match.AttrYear:         7,
		match.AttrTitle:        13,
		match.AttrHash:         34,
		match.AttrIMDBID:       34,
	}
	if len(weights) != len(want) {
		t.Errorf("len(weights) = %d, want %d", len(weights), len(want))
	}
	for attr, w := range want {
		got, ok := weights[attr]
		if !ok {
			t.Errorf("weights[%q] missing", attr)
			continue
		}
		if math.Abs(got-w) > weightEpsilon {
			t.Errorf("weights[%q] = %v, want %v", attr, got, w)
		}
	}
}

func TestWeightsAllPositive(t *testing.T) {
	for _, kind := range []video.Kind{video.KindEpisode, video.KindMovie} {
		weights, err := Weights(kind)
		if err != nil {
			t.Fatalf("Weights(%v) error = %v", kind, err)
		}
		for attr, w := range weights {
			if w <= 0 {
				t.Errorf("%v weight for %q = %v, want > 0", kind, attr, w)
			}
		}
	}
}

func TestWeightsUnknownKind(t *testing.T) {
	_, err := Weights(video.Kind(99))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Weights(99) error = %v, want *ConfigurationError", err)
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		attrs []match.Attribute
		kind  video.Kind
		want  float64
	}{
		{"empty set", nil, video.KindEpisode, 0},
		{
			"episode hash alone",
			[]match.Attribute{match.AttrHash},
			video.KindEpisode,
			79,
		},
		{
			"episode series season episode",
			[]match.Attribute{match.AttrSeries, match.AttrSeason, match.AttrEpisode},
			video.KindEpisode,
			60,
		},
		{
			"movie title year",
			[]match.Attribute{match.AttrTitle, match.AttrYear},
			video.KindMovie,
			20,
		},
		{
			"movie hash equals imdb",
			[]match.Attribute{match.AttrHash},
			video.KindMovie,
			34,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := match.NewSet(tt.attrs...)
			got, err := Calculate(set, tt.kind)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if math.Abs(got-tt.want) > weightEpsilon {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A hash match alone must outscore every non-identifier signal combined.
func TestHashDominatesReleaseSignals(t *testing.T) {
	weights, err := Weights(video.KindEpisode)
	if err != nil {
		t.Fatalf("Weights(KindEpisode) error = %v", err)
	}
	combined := weights[match.AttrResolution] + weights[match.AttrFormat] +
		weights[match.AttrVideoCodec] + weights[match.AttrAudioCodec] +
		weights[match.AttrReleaseGroup] + weights[match.AttrSeries] +
		weights[match.AttrYear] + weights[match.AttrSeason]
	if weights[match.AttrHash] < combined-weightEpsilon {
		t.Errorf("hash weight %v < combined release signals %v", weights[match.AttrHash], combined)
	}
}

func TestCalculatePanicsOnForeignAttribute(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Calculate() did not panic on attribute outside the movie vocabulary")
		}
	}()
	// tvdb_id exists only in the episode system.
	_, _ = Calculate(match.NewSet(match.AttrTVDBID), video.KindMovie)
}
