// Package main is the entry point for the questforge server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "questforge",
	Short: "Quest, trader assort, and weapon preset authoring for SPT",
	Long: `Questforge edits SPT server documents: quests with their conditions and
rewards, trader assort catalogs, and weapon presets. Run the HTTP server
with "serve", or move collections in and out of files with "export" and
"import".`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
