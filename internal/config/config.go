package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Database DatabaseConfig `yaml:"database"`
	Insight  InsightConfig  `yaml:"insight"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

const (
	DatasetSourceFile  = "file"
	DatasetSourceMySQL = "mysql"
)

type DatasetConfig struct {
	Source string `yaml:"source"`
	// Path of the JSON dataset; empty uses the embedded sample.
	Path string `yaml:"path"`
	// Cron expression for periodic reloads; empty disables them.
	ReloadSchedule string `yaml:"reloadSchedule"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

type InsightConfig struct {
	APIKey        string        `yaml:"apiKey"`
	Model         string        `yaml:"model"`
	Endpoint      string        `yaml:"endpoint"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerMinute int           `yaml:"ratePerMinute"`
	Burst         int           `yaml:"burst"`
}

// Default returns the configuration used when neither the file nor the
// environment sets a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Dataset: DatasetConfig{Source: DatasetSourceFile},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			User:            "salesdash",
			Password:        "secret",
			Name:            "salesdash",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Insight: InsightConfig{
			Model:         "gemini-2.5-flash",
			Endpoint:      "https://generativelanguage.googleapis.com/v1beta/models",
			Timeout:       30 * time.Second,
			RatePerMinute: 6,
			Burst:         1,
		},
	}
}

// ApplyEnv overrides cfg with any of the supported environment variables.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.AutomaticEnv()

	if v.IsSet("SERVER_PORT") {
		cfg.Server.Port = v.GetInt("SERVER_PORT")
	}
	if v.IsSet("LOG_LEVEL") {
		cfg.Log.Level = v.GetString("LOG_LEVEL")
	}
	if v.IsSet("LOG_FILE") {
		cfg.Log.File = v.GetString("LOG_FILE")
	}
	if v.IsSet("DATASET_SOURCE") {
		cfg.Dataset.Source = v.GetString("DATASET_SOURCE")
	}
	if v.IsSet("DATASET_PATH") {
		cfg.Dataset.Path = v.GetString("DATASET_PATH")
	}
	if v.IsSet("DATASET_RELOAD_SCHEDULE") {
		cfg.Dataset.ReloadSchedule = v.GetString("DATASET_RELOAD_SCHEDULE")
	}
	if v.IsSet("DB_HOST") {
		cfg.Database.Host = v.GetString("DB_HOST")
	}
	if v.IsSet("DB_PORT") {
		cfg.Database.Port = v.GetInt("DB_PORT")
	}
	if v.IsSet("DB_USER") {
		cfg.Database.User = v.GetString("DB_USER")
	}
	if v.IsSet("DB_PASSWORD") {
		cfg.Database.Password = v.GetString("DB_PASSWORD")
	}
	if v.IsSet("DB_NAME") {
		cfg.Database.Name = v.GetString("DB_NAME")
	}
	if v.IsSet("DB_CONN_MAX_LIFETIME") {
		d, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
		if err != nil {
			return err
		}
		cfg.Database.ConnMaxLifetime = d
	}
	if v.IsSet("GEMINI_API_KEY") {
		cfg.Insight.APIKey = v.GetString("GEMINI_API_KEY")
	}
	if v.IsSet("GEMINI_MODEL") {
		cfg.Insight.Model = v.GetString("GEMINI_MODEL")
	}

	return nil
}
