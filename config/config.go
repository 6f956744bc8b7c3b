package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPath = "config.json"
	EnvPrefix   = "PRODUCTLIB"
	envFile     = ".env"
)

type Configuration struct {
	ApiPort string `mapstructure:"api_port"`
	LogPath string `mapstructure:"log_path"`
	Debug   bool   `mapstructure:"debug"`

	Database string `mapstructure:"database"` // "sqlite3" ou "postgres"
	DbPath   string `mapstructure:"db_path"`
	DbHost   string `mapstructure:"db_host"`
	DbPort   string `mapstructure:"db_port"`
	DbUser   string `mapstructure:"db_user"`
	DbName   string `mapstructure:"db_name"`
	DbPass   string `mapstructure:"db_pass"`

	// StaticDir is served read-only under StaticPrefix.
	StaticDir    string `mapstructure:"static_dir"`
	StaticPrefix string `mapstructure:"static_prefix"`
	ImagePrefix  string `mapstructure:"image_prefix"`

	ExportDir   string   `mapstructure:"export_dir"`
	SeedFile    string   `mapstructure:"seed_file"`
	SeedOnStart bool     `mapstructure:"seed_on_start"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_port", "8080")
	v.SetDefault("log_path", "logs/server.log")
	v.SetDefault("debug", false)
	v.SetDefault("database", "sqlite3")
	v.SetDefault("db_path", "product_library.db")
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "")
	v.SetDefault("db_name", "")
	v.SetDefault("db_pass", "")
	v.SetDefault("static_dir", "static")
	v.SetDefault("static_prefix", "/static/")
	v.SetDefault("image_prefix", "images/")
	v.SetDefault("export_dir", "exports")
	v.SetDefault("seed_file", "data.json")
	v.SetDefault("seed_on_start", true)
	v.SetDefault("cors_origins", []string{"*"})
}

// Load reads the optional .env and JSON config file at path, then applies
// PRODUCTLIB_* environment overrides. A missing file is not an error.
func Load(path string) (Configuration, error) {
	var c Configuration

	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return c, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	normalize(&c)
	return c, nil
}

func normalize(c *Configuration) {
	if c.Database == "postgresql" {
		c.Database = "postgres"
	}
	if c.StaticPrefix != "" && !strings.HasSuffix(c.StaticPrefix, "/") {
		c.StaticPrefix += "/"
	}
	if c.ImagePrefix != "" && !strings.HasSuffix(c.ImagePrefix, "/") {
		c.ImagePrefix += "/"
	}
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}
}

// StaticRoute is the URL path the static directory is mounted on.
func (c Configuration) StaticRoute() string {
	route := strings.TrimSuffix(c.StaticPrefix, "/")
	if route == "" {
		return "/static"
	}
	return route
}

// Version is reported by the footer, the root endpoint and the CLI.
const Version = "0.0.1"
