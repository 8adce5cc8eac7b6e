// Package config wires Flare's configuration through viper: defaults first,
// then ~/.flare/config.yaml, then FLARE_* environment variables, then any
// flags the commands bind on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Configuration keys. Commands bind flags to these.
const (
	KeyDatabasePath     = "database.path"
	KeyBrowserRemoteURL = "browser.remote_url"
	KeyBrowserHeadless  = "browser.headless"
	KeyPageURL          = "page.url"
	KeyArchiveLimit     = "archive.limit"
	KeyLogLevel         = "logs.level"
	KeyLogFile          = "logs.file"
)

// Dir returns Flare's home directory (~/.flare), creating it if needed.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flare"
	}
	dir := filepath.Join(home, ".flare")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

// Load registers defaults and reads the optional config file. A missing
// file is fine; a malformed one is an error.
func Load() error {
	viper.SetDefault(KeyDatabasePath, filepath.Join(Dir(), "flare.db"))
	viper.SetDefault(KeyBrowserRemoteURL, "")
	viper.SetDefault(KeyBrowserHeadless, false)
	viper.SetDefault(KeyPageURL, "http://localhost:3000")
	viper.SetDefault(KeyArchiveLimit, 50)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFile, "")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("flare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// SetupLogging configures logrus from config. Without a log file the output
// is discarded entirely: the TUI owns the terminal and must stay silent.
func SetupLogging() {
	level, err := logrus.ParseLevel(viper.GetString(KeyLogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	path := viper.GetString(KeyLogFile)
	if path == "" {
		logrus.SetOutput(io.Discard)
		return
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
