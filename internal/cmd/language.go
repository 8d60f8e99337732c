package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/cli"
	"github.com/wethinkt/go-suhoor/internal/config"
	"github.com/wethinkt/go-suhoor/internal/i18n"
)

// Language command flags
var (
	languageList bool
	languageJSON bool
)

var languageCmd = &cobra.Command{
	Use:   "language [lang]",
	Short: "Get or set the display language",
	Long: `Get or set the display language. Accepts the native name (हिंदी), the
English name (Hindi) or a BCP 47 tag (hi).

Supported: English, العربية, اردو, हिंदी, TÜRKÇE, ਪੰਜਾਬੀ

Examples:
  suhoor language          # show current language
  suhoor language ar       # set to Arabic
  suhoor language --list   # list supported languages`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguage,
}

func runLanguage(cmd *cobra.Command, args []string) error {
	store, err := config.Open("")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		current := i18n.ResolveLanguage(store.Config().SelectedLanguage)
		if languageList || languageJSON {
			langs := i18n.AvailableLanguages(current)
			if languageJSON {
				return cli.ListLanguagesJSON(out, langs)
			}
			return cli.ListLanguages(out, langs)
		}
		fmt.Fprintf(out, "Current language: %s (%s)\n", current, current.Code())
		return nil
	}

	lang, err := i18n.ParseLanguage(args[0])
	if err != nil {
		return err
	}
	if err := store.SetLanguage(lang); err != nil {
		return err
	}
	fmt.Fprintf(out, "Language set to: %s (%s)\n", lang, lang.Code())
	return nil
}
