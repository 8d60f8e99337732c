package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethinkt/go-suhoor/internal/version"
)

var (
	versionJSON bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetInfo("suhoor")
		if versionJSON {
			_ = json.NewEncoder(cmd.OutOrStdout()).Encode(info) // Ignore encoding error
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.String("suhoor"))
	},
}
