// Package store holds client configuration and the local snapshot cache.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything needed to reach the backend and cache locally.
type Config struct {
	ServerURL string
	Token     string
	CachePath string
}

// LoadConfig reads ~/.co-console.yaml, the working directory, and the
// COCONSOLE_* environment, in increasing precedence.
func LoadConfig() (*Config, error) {
	viper.SetDefault("server", "http://localhost:1337/api")
	viper.SetDefault("cache", "~/.co-console.cache")
	viper.SetConfigName(".co-console")
	viper.SetEnvPrefix("COCONSOLE")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cache, err := expandPath(viper.GetString("cache"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerURL: strings.TrimRight(viper.GetString("server"), "/"),
		Token:     viper.GetString("token"),
		CachePath: cache,
	}, nil
}

func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("store: expand %q: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}
