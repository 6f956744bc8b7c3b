package main

import (
	"fmt"
	"path/filepath"

	"productlib/store"
	"productlib/transfer"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to a timestamped JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		dir := conf.ExportDir
		if exportDir != "" {
			dir = exportDir
		}
		result, err := transfer.NewExporter(store.New(database), dir, conf.StaticPrefix, logger).Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println(filepath.Join(dir, result.Filename))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (overrides export_dir)")
}
