package main

import (
	"fmt"
	"os"

	"productlib/config"
	"productlib/db"
	"productlib/tools"

	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configFile is set by the --config flag.
	configFile string

	conf   config.Configuration
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "productlib",
	Short: "Product library catalog backend",
	Long: `productlib serves the product catalog (modules, partners, clients and
cases) over HTTP and moves catalog data in and out as JSON documents.

Configuration is read from a JSON file (default config.json), a .env file
and PRODUCTLIB_* environment variables.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("productlib v" + config.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	c, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conf = c

	logger, err = tools.NewLogger(conf.Debug, conf.LogPath)
	if err != nil {
		return err
	}
	return nil
}

// openDatabase connects and migrates the catalog tables.
func openDatabase() (*gorm.DB, error) {
	database, err := db.Connect(conf, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
