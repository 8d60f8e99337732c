// Package i18n provides the language set and localized text for suhoor.
//
// Usage:
//
//	cat, err := i18n.NewCatalog()                     // once, at startup
//	cat.Phrase(i18n.PhraseSuhoor, i18n.Arabic)        // fixed UI string
//	cat.Translate("March 11, 04:43", i18n.Hindi)      // month names and digits
//	cat.FormatEvent(t, i18n.Urdu)                     // time.Time -> localized
package i18n

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned when a name or tag does not map to a
// supported language.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is one of the supported display languages.
type Language int

const (
	English Language = iota
	Arabic
	Urdu
	Hindi
	Turkish
	Punjabi

	numLanguages
)

type langInfo struct {
	tag         language.Tag
	label       string // native name, also the persisted value
	englishName string
	rtl         bool
}

var languages = [numLanguages]langInfo{
	English: {language.English, "English", "English", false},
	Arabic:  {language.Arabic, "العربية", "Arabic", true},
	Urdu:    {language.Urdu, "اردو", "Urdu", true},
	Hindi:   {language.Hindi, "हिंदी", "Hindi", false},
	Turkish: {language.Turkish, "TÜRKÇE", "Turkish", false},
	Punjabi: {language.Punjabi, "ਪੰਜਾਬੀ", "Punjabi", false},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, numLanguages)
	for i, l := range languages {
		tags[i] = l.tag
	}
	return tags
}

// All returns every supported language in display order.
func All() []Language {
	all := make([]Language, numLanguages)
	for i := range all {
		all[i] = Language(i)
	}
	return all
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l >= 0 && l < numLanguages
}

// String returns the native label, e.g. "العربية".
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languages[l].label
}

// EnglishName returns the English name of the language.
func (l Language) EnglishName() string {
	if !l.Valid() {
		return ""
	}
	return languages[l].englishName
}

// Tag returns the BCP 47 tag.
func (l Language) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return languages[l].tag
}

// Code returns the BCP 47 tag as a string, e.g. "ur".
func (l Language) Code() string {
	return l.Tag().String()
}

// RTL reports whether the language is written right-to-left.
func (l Language) RTL() bool {
	return l.Valid() && languages[l].rtl
}

// ParseLanguage accepts a native label ("TÜRKÇE"), an English name
// ("turkish") or a BCP 47 tag ("tr", "ar-EG", "pa-Guru-IN").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return English, fmt.Errorf("%w: empty name", ErrUnknownLanguage)
	}
	for _, l := range All() {
		info := languages[l]
		if strings.EqualFold(s, info.label) || strings.EqualFold(s, info.englishName) ||
			strings.EqualFold(s, info.tag.String()) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return English, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return Language(idx), nil
}

// LangInfo describes a language for pickers and API listings.
type LangInfo struct {
	Language    Language `json:"-"`
	Tag         string   `json:"tag"`
	Name        string   `json:"name"`
	EnglishName string   `json:"english_name"`
	RTL         bool     `json:"rtl"`
	Active      bool     `json:"active"`
}

// AvailableLanguages lists all languages, marking active as the current one.
func AvailableLanguages(active Language) []LangInfo {
	infos := make([]LangInfo, 0, numLanguages)
	for _, l := range All() {
		infos = append(infos, LangInfo{
			Language:    l,
			Tag:         l.Code(),
			Name:        l.String(),
			EnglishName: l.EnglishName(),
			RTL:         l.RTL(),
			Active:      l == active,
		})
	}
	return infos
}

// ResolveLanguage determines the active language from env and config.
// Priority: SUHOOR_LANG > configured > English
//
// The system locale is not consulted: with nothing stored the app opens
// in English. SUHOOR_LANG may be a POSIX locale such as "ur_PK.UTF-8".
func ResolveLanguage(configured string) Language {
	if v := os.Getenv("SUHOOR_LANG"); v != "" {
		if l, err := ParseLanguage(normalizeLocale(v)); err == nil {
			return l
		}
	}
	if configured != "" {
		if l, err := ParseLanguage(configured); err == nil {
			return l
		}
	}
	return English
}

// normalizeLocale converts POSIX locale format to BCP 47.
// e.g., "ur_PK.UTF-8" -> "ur-PK", "tr_TR" -> "tr-TR"
func normalizeLocale(posix string) string {
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	return strings.ReplaceAll(posix, "_", "-")
}
