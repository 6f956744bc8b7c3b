package main

import (
	"productlib/store"
	"productlib/transfer"

	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Merge the seed document into the catalog",
	Long: `Merge the seed document (default data.json) into the catalog. Records
whose id already exists are skipped, so seeding twice is harmless. When the
file is missing a small set of default records is seeded instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		path := conf.SeedFile
		if seedFile != "" {
			path = seedFile
		}
		runSeed(database, path)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed document (overrides seed_file)")
}

// runSeed merges the seed file. Failures are logged, never fatal.
func runSeed(database *gorm.DB, path string) {
	merger := transfer.NewMerger(store.New(database), conf.ImagePrefix, logger)
	report, err := merger.MergeFile(path)
	if err != nil {
		logger.Error("seed import failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("database initialized",
		zap.String("source", report.Source),
		zap.Int("added", report.Added()),
		zap.Int("skipped", report.Skipped()))
}
