// Package config loads the termnews feed configuration.
//
// Discovery order: a local config.toml override, then the per-user config
// directory, then the built-in default groups. A missing or malformed file
// falls through to the next source; configuration problems never abort
// startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/browser"

	"github.com/abelbrown/termnews/internal/feeds"
	"github.com/abelbrown/termnews/internal/logging"
)

// localPath is the working-directory override.
const localPath = "config.toml"

// appDir is the directory name under the user config dir.
const appDir = "termnews"

// FeedGroup is one `[[feeds]]` entry.
type FeedGroup struct {
	Name string   `toml:"name"`
	URLs []string `toml:"urls"`
}

// TUIConfig holds presentation preferences.
type TUIConfig struct {
	// RefreshInterval is the auto-refresh period in seconds; 0 disables it.
	RefreshInterval int `toml:"refresh_interval"`
}

// Config is the top-level configuration.
type Config struct {
	Feeds []FeedGroup `toml:"feeds"`
	TUI   TUIConfig   `toml:"tui"`
}

// template seeds the config file for new users when 'c' is pressed before
// one exists.
const template = `[[feeds]]
name = "Tech Hub"
urls = [
    "https://techcrunch.com/feed/",
    "https://www.theverge.com/rss/index.xml",
]

[[feeds]]
name = "World"
urls = [
    "https://feeds.bbci.co.uk/news/world/rss.xml",
]

[tui]
refresh_interval = 0
`

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	for _, g := range feeds.DefaultGroups {
		cfg.Feeds = append(cfg.Feeds, FeedGroup{Name: g.Name, URLs: g.URLs})
	}
	return cfg
}

// Path returns the per-user config file path.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, appDir, localPath), nil
}

// Load resolves the configuration through the discovery chain.
func Load() *Config {
	if cfg, err := load(localPath); err == nil {
		return cfg
	}

	if path, err := Path(); err == nil {
		if cfg, err := load(path); err == nil {
			return cfg
		}
	}

	return Default()
}

// load reads and parses one candidate file. Files that parse but define no
// feed groups are rejected so the chain can fall through.
func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logging.Warn("ignoring malformed config", "path", path, "err", err)
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("config %s defines no feed groups", path)
	}

	return &cfg, nil
}

// Groups converts the configured feed tables to the feeds model.
func (c *Config) Groups() []feeds.Group {
	groups := make([]feeds.Group, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		groups = append(groups, feeds.Group{Name: f.Name, URLs: f.URLs})
	}
	return groups
}

// EnsureFile creates the per-user config file from the template when it
// does not exist yet, and returns its path.
func EnsureFile() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("failed to write config template: %w", err)
	}

	return path, nil
}

// OpenInEditor opens the config file with the platform's default handler,
// creating it from the template first if needed. Returns a short status
// message for the UI; failures are never fatal.
func OpenInEditor() string {
	path, err := EnsureFile()
	if err != nil {
		logging.Error("failed to create config file", "err", err)
		return "Failed to create config file."
	}

	if err := browser.OpenFile(path); err != nil {
		logging.Error("failed to open config file", "path", path, "err", err)
		return "Could not open config file."
	}

	return "Opened config file. Restart to apply changes."
}
