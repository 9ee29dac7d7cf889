package subtitle

import "strings"

// Language identifies a subtitle language by ISO 639-1 code and display name.
type Language struct {
	Code string
	Name string
}

// languageNames maps ISO 639-1 codes to display names.
var languageNames = map[string]string{
	"ar": "Arabic",
	"az": "Azerbaijani",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"ms": "Malay",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"sr": "Serbian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// FromCode returns the Language for an ISO 639-1 code. Unknown codes keep
// the code as the display name.
func FromCode(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if name, ok := languageNames[code]; ok {
		return Language{Code: code, Name: name}
	}
	return Language{Code: code, Name: code}
}

// FromName resolves a display name such as "English" back to a Language.
// Names some catalogs decorate with regions ("French (Canadian)") resolve on
// the base name. Returns false when the name is unknown.
func FromName(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	for code, n := range languageNames {
		if strings.EqualFold(n, name) {
			return Language{Code: code, Name: n}, true
		}
	}
	return Language{}, false
}

// ParseCodes converts a comma-separated code list ("en,fr") to languages,
// skipping empty entries.
func ParseCodes(s string) []Language {
	var langs []Language
	for _, code := range strings.Split(s, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		langs = append(langs, FromCode(code))
	}
	return langs
}

// ContainsLanguage reports whether lang is in the wanted set. An empty
// wanted set accepts every language.
func ContainsLanguage(wanted []Language, lang Language) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w.Code == lang.Code {
			return true
		}
	}
	return false
}
