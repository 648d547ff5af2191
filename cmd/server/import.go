package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sptforge/questforge/internal/config"
	"github.com/sptforge/questforge/internal/logger"
	"github.com/sptforge/questforge/internal/services/preset"
	"github.com/sptforge/questforge/internal/services/quest"
)

var (
	importCollection string
	importFile       string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a collection from a file",
	Long: `Import a server-format JSON file into storage. Quest files merge into
the existing collection by id; preset files replace it.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importCollection, "collection", "quests", "collection to import (quests or presets)")
	importCmd.Flags().StringVar(&importFile, "file", "", "path of the file to import")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Setup(cfg.Log.Level)

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	svcs, err := buildServices(cfg, log)
	if err != nil {
		return err
	}

	var imported int
	switch importCollection {
	case "quests":
		output, err := svcs.Quests.ImportQuests(cmd.Context(), &quest.ImportQuestsInput{Data: data})
		if err != nil {
			return err
		}
		imported = output.Imported
	case "presets":
		output, err := svcs.Presets.ImportPresets(cmd.Context(), &preset.ImportPresetsInput{Data: data})
		if err != nil {
			return err
		}
		imported = output.Imported
	default:
		return fmt.Errorf("unknown collection %q, expected quests or presets", importCollection)
	}

	log.Info("imported collection", "collection", importCollection, "file", importFile, "count", imported)
	return nil
}
