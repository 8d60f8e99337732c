package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// PhraseID names a fixed UI string.
type PhraseID string

const (
	PhraseNotRamadan             PhraseID = "notRamadan"
	PhraseTimeLeft               PhraseID = "timeLeft"
	PhraseAppearanceHeader       PhraseID = "appearanceHeader"
	PhraseDarkModeToggle         PhraseID = "darkModeToggle"
	PhraseTextSizeHeader         PhraseID = "textSizeHeader"
	PhraseLanguageHeader         PhraseID = "languageHeader"
	PhraseTimesForIftarAndSuhoor PhraseID = "timesForIftarAndSuhoor"
	PhraseIftar                  PhraseID = "iftar"
	PhraseSuhoor                 PhraseID = "suhoor"
	PhraseSettingsTitle          PhraseID = "settingsTitle"
	PhrasePeriodEnded            PhraseID = "periodEnded"
	PhraseCountdown              PhraseID = "countdown"
	PhraseHelpTimes              PhraseID = "helpTimes"
	PhraseHelpSettings           PhraseID = "helpSettings"
)

// Phrases is the closed set of phrase IDs every locale must define.
var Phrases = []PhraseID{
	PhraseNotRamadan,
	PhraseTimeLeft,
	PhraseAppearanceHeader,
	PhraseDarkModeToggle,
	PhraseTextSizeHeader,
	PhraseLanguageHeader,
	PhraseTimesForIftarAndSuhoor,
	PhraseIftar,
	PhraseSuhoor,
	PhraseSettingsTitle,
	PhrasePeriodEnded,
	PhraseCountdown,
	PhraseHelpTimes,
	PhraseHelpSettings,
}

const (
	digitsID    = "digits"
	monthPrefix = "month."
)

// Catalog is the immutable language x phrase table plus the month and
// digit tables used by Translate. Safe for concurrent use.
type Catalog struct {
	phrases [numLanguages]map[PhraseID]string
	months  [numLanguages][13]string
	digits  [numLanguages][10]string

	// English month names, longest first, for the tokenizer.
	monthTokens []monthToken
}

type monthToken struct {
	name  string
	month int
}

// NewCatalog loads the embedded locale files and validates that every
// language defines every phrase, all twelve months and ten digits.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var files [numLanguages]*i18n.MessageFile
	for _, l := range All() {
		mf, err := bundle.LoadMessageFileFS(localeFS, "locales/"+l.Code()+".toml")
		if err != nil {
			return nil, fmt.Errorf("load %s locale: %w", l.EnglishName(), err)
		}
		files[l] = mf
	}
	return buildCatalog(files)
}

func buildCatalog(files [numLanguages]*i18n.MessageFile) (*Catalog, error) {
	c := &Catalog{}
	var missing []string

	for _, l := range All() {
		messages := make(map[string]string)
		if mf := files[l]; mf != nil {
			for _, m := range mf.Messages {
				messages[m.ID] = m.Other
			}
		}

		c.phrases[l] = make(map[PhraseID]string, len(Phrases))
		for _, id := range Phrases {
			s := messages[string(id)]
			if s == "" {
				missing = append(missing, l.Code()+":"+string(id))
				continue
			}
			c.phrases[l][id] = s
		}

		for m := 1; m <= 12; m++ {
			id := monthPrefix + strconv.Itoa(m)
			s := messages[id]
			if s == "" {
				missing = append(missing, l.Code()+":"+id)
				continue
			}
			c.months[l][m] = s
		}

		digits := messages[digitsID]
		if utf8.RuneCountInString(digits) != 10 {
			missing = append(missing, l.Code()+":"+digitsID)
			continue
		}
		i := 0
		for _, r := range digits {
			c.digits[l][i] = string(r)
			i++
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete locale catalog, missing: %s", strings.Join(missing, ", "))
	}

	for m := 1; m <= 12; m++ {
		c.monthTokens = append(c.monthTokens, monthToken{name: c.months[English][m], month: m})
	}
	sort.SliceStable(c.monthTokens, func(i, j int) bool {
		return len(c.monthTokens[i].name) > len(c.monthTokens[j].name)
	})

	return c, nil
}

// Phrase returns the string for id in lang. Unknown languages fall back
// to English; unknown IDs return the ID itself.
func (c *Catalog) Phrase(id PhraseID, lang Language) string {
	if !lang.Valid() {
		lang = English
	}
	if s, ok := c.phrases[lang][id]; ok {
		return s
	}
	return string(id)
}

// Phrasef formats the phrase with fmt.Sprintf-style args.
func (c *Catalog) Phrasef(id PhraseID, lang Language, args ...any) string {
	return fmt.Sprintf(c.Phrase(id, lang), args...)
}

// Months returns the 13-entry month table for lang; index 0 is blank.
func (c *Catalog) Months(lang Language) [13]string {
	if !lang.Valid() {
		lang = English
	}
	return c.months[lang]
}

// MonthName returns the localized name of month m (1-12).
func (c *Catalog) MonthName(m int, lang Language) string {
	if m < 1 || m > 12 {
		return ""
	}
	return c.Months(lang)[m]
}

// Digits returns the glyphs for 0-9 in lang.
func (c *Catalog) Digits(lang Language) [10]string {
	if !lang.Valid() {
		lang = English
	}
	return c.digits[lang]
}

// Phrases returns a copy of every phrase for lang, keyed by ID.
func (c *Catalog) Phrases(lang Language) map[PhraseID]string {
	if !lang.Valid() {
		lang = English
	}
	out := make(map[PhraseID]string, len(c.phrases[lang]))
	for k, v := range c.phrases[lang] {
		out[k] = v
	}
	return out
}
