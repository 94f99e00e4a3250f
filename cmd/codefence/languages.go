// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/codefence/internal/output"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Print the language to file extension table",
	Long: `Languages prints the extension used for each known language label,
including overrides from the config file's extensions map. Labels not
listed use the label itself as the extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-12s  %s\n", "Language", "Extension")
		for _, row := range output.ExtensionTable(viper.GetStringMapString("extensions")) {
			fmt.Fprintf(w, "%-12s  %s\n", row[0], row[1])
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
