package score

import (
	"github.com/subscout/subscout/internal/match"
)

// term is one coefficient*attribute product on the right-hand side of an
// equation.
type term struct {
	attr match.Attribute
	coef float64
}

// Equation is one linear equality: lhs = Σ rhs + constant.
type Equation struct {
	lhs      match.Attribute
	rhs      []term
	constant float64
}

func eq(lhs match.Attribute, constant float64, rhs ...term) Equation {
	return Equation{lhs: lhs, rhs: rhs, constant: constant}
}

func tm(attr match.Attribute) term {
	return term{attr: attr, coef: 1}
}

func ct(coef float64, attr match.Attribute) term {
	return term{attr: attr, coef: coef}
}

// episodeEquations encodes the relative importance of episode attributes:
//
//	 1. hash = resolution + format + video_codec + audio_codec + release_group + series + year + season
//	 2. series = resolution + video_codec + audio_codec + release_group + format + 1
//	 3. year = series
//	 4. tvdb_id = series + year
//	 5. season = series
//	 6. imdb_id = series + season + episode + year
//	 7. format = 4
//	 8. resolution = 4
//	 9. video_codec = 1
//	10. title = season + episode
//	11. season = episode
//	12. release_group = 8
//	13. audio_codec = 2
var episodeEquations = []Equation{
	eq(match.AttrHash, 0,
		tm(match.AttrResolution), tm(match.AttrFormat), tm(match.AttrVideoCodec), tm(match.AttrAudioCodec),
		tm(match.AttrReleaseGroup), tm(match.AttrSeries), tm(match.AttrYear), tm(match.AttrSeason)),
	eq(match.AttrSeries, 1,
		tm(match.AttrResolution), tm(match.AttrVideoCodec), tm(match.AttrAudioCodec),
		tm(match.AttrReleaseGroup), tm(match.AttrFormat)),
	eq(match.AttrYear, 0, tm(match.AttrSeries)),
	eq(match.AttrTVDBID, 0, tm(match.AttrSeries), tm(match.AttrYear)),
	eq(match.AttrSeason, 0, tm(match.AttrSeries)),
	eq(match.AttrIMDBID, 0,
		tm(match.AttrSeries), tm(match.AttrSeason), tm(match.AttrEpisode), tm(match.AttrYear)),
	eq(match.AttrFormat, 4),
	eq(match.AttrResolution, 4),
	eq(match.AttrVideoCodec, 1),
	eq(match.AttrTitle, 0, tm(match.AttrSeason), tm(match.AttrEpisode)),
	eq(match.AttrSeason, 0, tm(match.AttrEpisode)),
	eq(match.AttrReleaseGroup, 8),
	eq(match.AttrAudioCodec, 2),
}

// movieEquations encodes the relative importance of movie attributes:
//
//	1. hash = resolution + format + video_codec + audio_codec + title + year + release_group
//	2. imdb_id = hash
//	3. resolution = video_codec
//	4. video_codec = 2 * audio_codec
//	5. format = video_codec + audio_codec
//	6. title = resolution + video_codec + audio_codec + year + 1
//	7. release_group = resolution + video_codec + audio_codec + 1
//	8. year = release_group + 1
//	9. audio_codec = 1
var movieEquations = []Equation{
	eq(match.AttrHash, 0,
		tm(match.AttrResolution), tm(match.AttrFormat), tm(match.AttrVideoCodec), tm(match.AttrAudioCodec),
		tm(match.AttrTitle), tm(match.AttrYear), tm(match.AttrReleaseGroup)),
	eq(match.AttrIMDBID, 0, tm(match.AttrHash)),
	eq(match.AttrResolution, 0, tm(match.AttrVideoCodec)),
	eq(match.AttrVideoCodec, 0, ct(2, match.AttrAudioCodec)),
	eq(match.AttrFormat, 0, tm(match.AttrVideoCodec), tm(match.AttrAudioCodec)),
	eq(match.AttrTitle, 1,
		tm(match.AttrResolution), tm(match.AttrVideoCodec), tm(match.AttrAudioCodec), tm(match.AttrYear)),
	eq(match.AttrReleaseGroup, 1,
		tm(match.AttrResolution), tm(match.AttrVideoCodec), tm(match.AttrAudioCodec)),
	eq(match.AttrYear, 1, tm(match.AttrReleaseGroup)),
	eq(match.AttrAudioCodec, 1),
}
