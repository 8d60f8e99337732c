package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/wethinkt/go-suhoor/internal/i18n"
)

// ListLanguages writes the supported languages with the active one
// marked by *.
func ListLanguages(w io.Writer, langs []i18n.LangInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range langs {
		marker := " "
		if l.Active {
			marker = "*"
		}
		dir := ""
		if l.RTL {
			dir = "rtl"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", marker, l.Tag, l.EnglishName, l.Name, dir)
	}
	return tw.Flush()
}

// ListLanguagesJSON writes the supported languages as JSON.
func ListLanguagesJSON(w io.Writer, langs []i18n.LangInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(langs)
}
