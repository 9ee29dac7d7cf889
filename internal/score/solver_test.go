package score

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/subscout/subscout/internal/match"
)

func TestSolveSimpleSystem(t *testing.T) {
	// x = 2, y = x + 1, z = x + y
	equations := []Equation{
		eq(match.AttrAudioCodec, 2),
		eq(match.AttrVideoCodec, 1, tm(match.AttrAudioCodec)),
		eq(match.AttrResolution, 0, tm(match.AttrAudioCodec), tm(match.AttrVideoCodec)),
	}
	weights, err := Solve(equations)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	want := WeightMap{
		match.AttrAudioCodec: 2,
		match.AttrVideoCodec: 3,
		match.AttrResolution: 5,
	}
	for attr, w := range want {
		if math.Abs(weights[attr]-w) > weightEpsilon {
			t.Errorf("weights[%q] = %v, want %v", attr, weights[attr], w)
		}
	}
}

func TestSolveCoefficients(t *testing.T) {
	// x = 3, y = 2x
	equations := []Equation{
		eq(match.AttrAudioCodec, 3),
		eq(match.AttrVideoCodec, 0, ct(2, match.AttrAudioCodec)),
	}
	weights, err := Solve(equations)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got := weights[match.AttrVideoCodec]; math.Abs(got-6) > weightEpsilon {
		t.Errorf("weights[video_codec] = %v, want 6", got)
	}
}

func TestSolveOverDeterminedConsistent(t *testing.T) {
	// The redundant constraint repeats an implied equality and must not
	// make the system unsolvable.
	equations := []Equation{
		eq(match.AttrAudioCodec, 1),
		eq(match.AttrVideoCodec, 0, ct(2, match.AttrAudioCodec)),
		eq(match.AttrVideoCodec, 1, tm(match.AttrAudioCodec)),
	}
	weights, err := Solve(equations)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got := weights[match.AttrVideoCodec]; math.Abs(got-2) > weightEpsilon {
		t.Errorf("weights[video_codec] = %v, want 2", got)
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		equations []Equation
	}{
		{"empty system", nil},
		{
			"under-determined",
			[]Equation{
				eq(match.AttrVideoCodec, 0, tm(match.AttrAudioCodec)),
			},
		},
		{
			"inconsistent",
			[]Equation{
				eq(match.AttrAudioCodec, 1),
				eq(match.AttrAudioCodec, 2),
			},
		},
		{
			"inconsistent over-determined",
			[]Equation{
				eq(match.AttrAudioCodec, 1),
				eq(match.AttrVideoCodec, 0, ct(2, match.AttrAudioCodec)),
				eq(match.AttrVideoCodec, 0, ct(3, match.AttrAudioCodec)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.equations)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Solve() error = %v, want *ConfigurationError", err)
			}
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	first, err := Solve(episodeEquations)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	second, err := Solve(episodeEquations)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Solve() not deterministic: %v != %v", first, second)
	}
}
