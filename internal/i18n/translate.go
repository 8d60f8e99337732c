package i18n

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Base layouts rendered before translation.
const (
	LayoutMonthDay = "January 2"
	LayoutClock    = "15:04"
	LayoutEvent    = "January 2, 15:04"
)

// Translate rewrites English month names and ASCII digit runs in text
// into lang's month names and digit glyphs.
//
// The input is scanned once and output goes to a separate buffer, so a
// replacement is never matched again: "11" becomes one two-glyph token.
// Month names only match as whole words, so "May" inside "Mayıs" is
// left alone. Unknown languages return text unchanged.
func (c *Catalog) Translate(text string, lang Language) string {
	if !lang.Valid() || lang == English {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if m, n := c.matchMonth(text, i); n > 0 {
			b.WriteString(c.months[lang][m])
			i += n
			continue
		}

		if isASCIIDigit(text[i]) {
			j := i
			for j < len(text) && isASCIIDigit(text[j]) {
				b.WriteString(c.digits[lang][text[j]-'0'])
				j++
			}
			i = j
			continue
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}

	return b.String()
}

// matchMonth returns the month number and byte length of the English
// month name starting at text[i], or (0, 0) if none matches as a word.
func (c *Catalog) matchMonth(text string, i int) (int, int) {
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if unicode.IsLetter(prev) {
			return 0, 0
		}
	}
	rest := text[i:]
	for _, tok := range c.monthTokens {
		if !strings.HasPrefix(rest, tok.name) {
			continue
		}
		if next, _ := utf8.DecodeRuneInString(rest[len(tok.name):]); next != utf8.RuneError && unicode.IsLetter(next) {
			continue
		}
		return tok.month, len(tok.name)
	}
	return 0, 0
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Format renders t with a Go layout and translates the result.
func (c *Catalog) Format(t time.Time, layout string, lang Language) string {
	return c.Translate(t.Format(layout), lang)
}

// FormatMonthDay renders e.g. "March 11" / "مارس ١١".
func (c *Catalog) FormatMonthDay(t time.Time, lang Language) string {
	return c.Format(t, LayoutMonthDay, lang)
}

// FormatClock renders the 24-hour time, e.g. "04:43" / "०४:४३".
func (c *Catalog) FormatClock(t time.Time, lang Language) string {
	return c.Format(t, LayoutClock, lang)
}

// FormatEvent renders month, day and time, e.g. "March 11, 04:43".
func (c *Catalog) FormatEvent(t time.Time, lang Language) string {
	return c.Format(t, LayoutEvent, lang)
}
