package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
)

// Config holds the settings sortinghat reads at startup.
type Config struct {
	APIBase        string
	WikiBase       string
	ImageProxy     string
	RequestTimeout time.Duration
	LogFile        string
	House          catalog.House
}

const (
	defaultConfigPath     = "~/.config/sortinghat/config.toml"
	defaultLogFile        = "~/.local/state/sortinghat/sortinghat.log"
	defaultRequestTimeout = 15 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:        hpapi.DefaultBaseURL,
		WikiBase:       portrait.DefaultWikiBase,
		ImageProxy:     portrait.DefaultProxy,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		WikiBase       string `toml:"wiki_base"`
		ImageProxy     string `toml:"image_proxy"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		House          string `toml:"house"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.WikiBase); v != "" {
		if !strings.HasSuffix(v, "/") {
			v += "/"
		}
		cfg.WikiBase = v
	}
	if v := strings.TrimSpace(raw.ImageProxy); v != "" {
		cfg.ImageProxy = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("request_timeout must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.House); v != "" {
		h, ok := catalog.ParseHouse(v)
		if !ok {
			return Config{}, fmt.Errorf("unknown house %q", v)
		}
		cfg.House = h
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
