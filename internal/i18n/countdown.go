package i18n

import "time"

// Countdown renders the time remaining until an event, e.g. "in 3h 05m",
// with digits in lang's script. Negative durations render as zero.
func (c *Catalog) Countdown(d time.Duration, lang Language) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Minute)
	hours := int(d / time.Hour)
	mins := int((d % time.Hour) / time.Minute)
	return c.Translate(c.Phrasef(PhraseCountdown, lang, hours, mins), lang)
}
