package config

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the runtime settings. Every field can come from the yaml file
// or be overridden through the environment.
type Config struct {
	LogLevel  string `yaml:"log_level" env:"EQUIPE_LOG_LEVEL" env-default:"INFO"`
	Addr      string `yaml:"addr" env:"EQUIPE_ADDR" env-default:":8080"`
	DBPath    string `yaml:"db_path" env:"EQUIPE_DB_PATH" env-default:"data/equipe.db"`
	StaticDir string `yaml:"static_dir" env:"EQUIPE_STATIC_DIR" env-default:"web/dist"`
}

// MustLoad reads the configuration file, falling back to environment-only
// when the file does not exist. The process cannot run without a valid
// configuration, so any other failure is fatal.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}

// SlogLevel maps the configured level name onto slog. Unknown names fall
// back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
