package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Release holds the properties extractable from a free-text release name.
// It doubles as the comparison target when guessing matches for a video.
type Release struct {
	Title        string
	Year         int
	Season       int
	Episode      int
	ReleaseGroup string
	Resolution   string
	Format       string
	VideoCodec   string
	AudioCodec   string
}

type releasePatterns struct {
	resolution   *regexp.Regexp
	format       *regexp.Regexp
	videoCodec   *regexp.Regexp
	audioCodec   *regexp.Regexp
	releaseGroup *regexp.Regexp
	seasonEp     *regexp.Regexp
	year         *regexp.Regexp
	ext          *regexp.Regexp
}

var patterns = &releasePatterns{
	resolution:   regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|4k|uhd)\b`),
	format:       regexp.MustCompile(`(?i)\b(blu-?ray|bdrip|brrip|remux|web-?dl|webrip|web|hdtv|pdtv|sdtv|dvdrip|dvd)\b`),
	videoCodec:   regexp.MustCompile(`(?i)\b(x26[45]|h[. ]?26[45]|hevc|avc|av1|xvid|divx)\b`),
	audioCodec:   regexp.MustCompile(`(?i)\b(dts-?hd|dts|truehd|atmos|e-?ac-?3|ddp?|ac3|aac|flac|mp3|opus)\b`),
	releaseGroup: regexp.MustCompile(`-([A-Za-z0-9]+)(?:\.[A-Za-z0-9]{2,4})?$`),
	seasonEp:     regexp.MustCompile(`(?i)\bs(\d{1,2})[. ]?e(\d{1,3})\b|\b(\d{1,2})x(\d{1,3})\b`),
	year:         regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`),
	ext:          regexp.MustCompile(`(?i)\.(mkv|mp4|avi|wmv|mov|m4v|webm|ts)$`),
}

// ParseRelease extracts properties from a release name such as
// "Show.Name.S01E02.720p.HDTV.x264-GROUP".
func ParseRelease(name string) Release {
	r := Release{}
	if name == "" {
		return r
	}
	name = patterns.ext.ReplaceAllString(name, "")

	if m := patterns.seasonEp.FindStringSubmatch(name); m != nil {
		if m[1] != "" {
			r.Season, _ = strconv.Atoi(m[1])
			r.Episode, _ = strconv.Atoi(m[2])
		} else {
			r.Season, _ = strconv.Atoi(m[3])
			r.Episode, _ = strconv.Atoi(m[4])
		}
	}
	if m := patterns.year.FindString(name); m != "" {
		r.Year, _ = strconv.Atoi(m)
	}
	if m := patterns.resolution.FindString(name); m != "" {
		r.Resolution = NormalizeResolution(m)
	}
	if m := patterns.format.FindString(name); m != "" {
		r.Format = NormalizeFormat(m)
	}
	if m := patterns.videoCodec.FindString(name); m != "" {
		r.VideoCodec = NormalizeVideoCodec(m)
	}
	if m := patterns.audioCodec.FindString(name); m != "" {
		r.AudioCodec = NormalizeAudioCodec(m)
	}
	if m := patterns.releaseGroup.FindStringSubmatch(name); m != nil {
		r.ReleaseGroup = m[1]
	}

	// Title: everything before the season/episode or year marker, dots and
	// underscores folded to spaces.
	title := name
	if loc := patterns.seasonEp.FindStringIndex(name); loc != nil {
		title = name[:loc[0]]
	} else if loc := patterns.year.FindStringIndex(name); loc != nil {
		title = name[:loc[0]]
	}
	title = strings.NewReplacer(".", " ", "_", " ").Replace(title)
	r.Title = strings.TrimSpace(strings.Trim(title, " -"))
	return r
}

// GuessMatches compares the properties extracted from freeText against the
// wanted release properties and returns the attributes that agree. A property
// missing on either side contributes nothing.
func GuessMatches(want Release, freeText string) Set {
	got := ParseRelease(freeText)
	s := NewSet()
	if want.ReleaseGroup != "" && strings.EqualFold(got.ReleaseGroup, want.ReleaseGroup) {
		s.Add(AttrReleaseGroup)
	}
	if want.Resolution != "" && NormalizeResolution(want.Resolution) == got.Resolution {
		s.Add(AttrResolution)
	}
	if want.Format != "" && NormalizeFormat(want.Format) == got.Format {
		s.Add(AttrFormat)
	}
	if want.VideoCodec != "" && NormalizeVideoCodec(want.VideoCodec) == got.VideoCodec {
		s.Add(AttrVideoCodec)
	}
	if want.AudioCodec != "" && NormalizeAudioCodec(want.AudioCodec) == got.AudioCodec {
		s.Add(AttrAudioCodec)
	}
	return s
}

// NormalizeResolution converts a resolution token to its standard form.
func NormalizeResolution(s string) string {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "2160") || upper == "4K" || upper == "UHD":
		return "2160p"
	case strings.Contains(upper, "1080"):
		return "1080p"
	case strings.Contains(upper, "720"):
		return "720p"
	case strings.Contains(upper, "480"):
		return "480p"
	default:
		return strings.ToLower(s)
	}
}

// NormalizeFormat converts a source/format token to its standard form.
func NormalizeFormat(s string) string {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "BLU") || strings.Contains(upper, "BDRIP") || strings.Contains(upper, "BRRIP"):
		return "BluRay"
	case strings.Contains(upper, "WEBRIP"):
		return "WEBRip"
	case strings.Contains(upper, "WEB"):
		return "WEB-DL"
	case strings.Contains(upper, "HDTV"):
		return "HDTV"
	case strings.Contains(upper, "PDTV"):
		return "PDTV"
	case strings.Contains(upper, "DVD"):
		return "DVDRip"
	default:
		return upper
	}
}

// NormalizeVideoCodec converts a video codec token to its standard form.
func NormalizeVideoCodec(s string) string {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "265") || strings.Contains(upper, "HEVC"):
		return "HEVC"
	case strings.Contains(upper, "264") || strings.Contains(upper, "AVC"):
		return "H.264"
	case strings.Contains(upper, "AV1"):
		return "AV1"
	case strings.Contains(upper, "XVID"):
		return "XviD"
	case strings.Contains(upper, "DIVX"):
		return "DivX"
	default:
		return upper
	}
}

// NormalizeAudioCodec converts an audio codec token to its standard form.
func NormalizeAudioCodec(s string) string {
	upper := strings.ReplaceAll(strings.ToUpper(s), "-", "")
	switch {
	case strings.Contains(upper, "DTSHD"):
		return "DTS-HD"
	case strings.Contains(upper, "DTS"):
		return "DTS"
	case strings.Contains(upper, "TRUEHD"), strings.Contains(upper, "ATMOS"):
		return "TrueHD"
	case strings.Contains(upper, "EAC3"), upper == "DDP":
		return "EAC3"
	case strings.Contains(upper, "AC3"), upper == "DD":
		return "AC3"
	case strings.Contains(upper, "AAC"):
		return "AAC"
	case strings.Contains(upper, "FLAC"):
		return "FLAC"
	default:
		return upper
	}
}
