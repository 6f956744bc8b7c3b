package db

import (
	"fmt"
	"os"
	"path/filepath"

	"productlib/config"
	"productlib/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Connect opens the database named by conf.Database (sqlite3 by default).
// SQL statements are logged at debug level when conf.Debug is set.
func Connect(conf config.Configuration, log *zap.Logger) (*gorm.DB, error) {
	var (
		database *gorm.DB
		err      error
	)

	switch conf.Database {
	case "postgres":
		log.Info("connecting to postgresql", zap.String("host", conf.DbHost), zap.String("db", conf.DbName))
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		database, err = gorm.Open("postgres", path)
	case "sqlite3", "":
		log.Info("connecting to sqlite3", zap.String("path", conf.DbPath))
		if dir := filepath.Dir(conf.DbPath); dir != "." && conf.DbPath != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
		database, err = gorm.Open("sqlite3", conf.DbPath)
	default:
		return nil, fmt.Errorf("unsupported database %q", conf.Database)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.Database, err)
	}

	if database.Dialect().GetName() == "sqlite3" {
		// single writer; also keeps :memory: one database across the pool
		database.DB().SetMaxOpenConns(1)
	}

	database.SetLogger(gormLogger{log.Sugar()})
	database.LogMode(conf.Debug)

	return database, nil
}

// Migrate creates or extends the catalog tables.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(models.All()...).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

type gormLogger struct {
	log *zap.SugaredLogger
}

func (l gormLogger) Print(v ...interface{}) {
	l.log.Debug(gorm.LogFormatter(v...)...)
}
