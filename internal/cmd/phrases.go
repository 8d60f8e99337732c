package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/i18n"
)

// Phrases command flags
var (
	phrasesLang string
	phrasesJSON bool
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Print the localized phrase catalog",
	Long: `Print every UI phrase, the month names and the digit glyphs for one
language.

Examples:
  suhoor phrases --lang pa
  suhoor phrases --lang ar --json`,
	Args: cobra.NoArgs,
	RunE: runPhrases,
}

type phrasesOutput struct {
	Language string                   `json:"language"`
	Phrases  map[i18n.PhraseID]string `json:"phrases"`
	Months   []string                 `json:"months"`
	Digits   []string                 `json:"digits"`
}

func runPhrases(cmd *cobra.Command, args []string) error {
	cat, err := i18n.NewCatalog()
	if err != nil {
		return err
	}

	var lang i18n.Language
	if phrasesLang != "" {
		if lang, err = i18n.ParseLanguage(phrasesLang); err != nil {
			return err
		}
	} else {
		store, err := config.Open("")
		if err != nil {
			return err
		}
		lang = i18n.ResolveLanguage(store.Config().SelectedLanguage)
	}

	months := cat.Months(lang)
	digits := cat.Digits(lang)
	out := cmd.OutOrStdout()

	if phrasesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(phrasesOutput{
			Language: lang.Code(),
			Phrases:  cat.Phrases(lang),
			Months:   months[1:],
			Digits:   digits[:],
		})
	}

	fmt.Fprintf(out, "%s (%s)\n\n", lang, lang.Code())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, id := range i18n.Phrases {
		fmt.Fprintf(w, "%s\t%s\n", id, cat.Phrase(id, lang))
	}
	fmt.Fprintf(w, "months\t%s\n", strings.Join(months[1:], ", "))
	fmt.Fprintf(w, "digits\t%s\n", strings.Join(digits[:], " "))
	return w.Flush()
}
