package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyDBPath     = "db.path"
	KeyServerAddr = "server.addr"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

type Config struct {
	DBPath     string
	ServerAddr string
	LogLevel   slog.Level
	LogFormat  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
}

// LoadConfig reads the merged flag, env, file and default values.
func LoadConfig() (Config, error) {
	return configFrom(viper.GetViper())
}

func configFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		DBPath:     v.GetString(KeyDBPath),
		ServerAddr: v.GetString(KeyServerAddr),
		LogFormat:  strings.ToLower(v.GetString(KeyLogFormat)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return Config{}, fmt.Errorf("%s: unknown format %q", KeyLogFormat, cfg.LogFormat)
	}
	if cfg.ServerAddr == "" {
		return Config{}, fmt.Errorf("%s is empty", KeyServerAddr)
	}
	return cfg, nil
}

func setupLogger(cfg Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
