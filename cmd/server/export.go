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
	exportCollection string
	exportOut        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a collection to a file",
	Long:  `Export the quest or preset collection from storage to a server-format JSON file.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCollection, "collection", "quests", "collection to export (quests or presets)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (defaults to the collection's filename)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Setup(cfg.Log.Level)

	svcs, err := buildServices(cfg, log)
	if err != nil {
		return err
	}

	var (
		data     []byte
		filename string
	)
	switch exportCollection {
	case "quests":
		output, err := svcs.Quests.ExportQuests(cmd.Context(), &quest.ExportQuestsInput{})
		if err != nil {
			return err
		}
		data, filename = output.Data, output.Filename
	case "presets":
		output, err := svcs.Presets.ExportPresets(cmd.Context(), &preset.ExportPresetsInput{})
		if err != nil {
			return err
		}
		data, filename = output.Data, output.Filename
	default:
		return fmt.Errorf("unknown collection %q, expected quests or presets", exportCollection)
	}

	if exportOut != "" {
		filename = exportOut
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	log.Info("exported collection", "collection", exportCollection, "file", filename)
	return nil
}
