package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	scarpet "github.com/FedericoCarboni/scarpet-parser"
)

// Config is the scarpet-tools.toml file.
type Config struct {
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	Repl      ReplConfig      `toml:"repl"`
}

type TokenizerConfig struct {
	AllowComments      bool `toml:"allow_comments"`
	AllowNewLineMarker bool `toml:"allow_new_line_markers"`
}

type ReplConfig struct {
	HistoryFile string `toml:"history_file"`
}

func defaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Tokenizer: TokenizerConfig{AllowComments: true},
		Repl:      ReplConfig{HistoryFile: filepath.Join(home, ".scarpet_history")},
	}
}

// LoadConfig reads path, or the first of ./scarpet-tools.toml and
// ~/.config/scarpet-tools/config.toml when path is empty. A missing default
// file is not an error; an explicitly named one is.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, _ := os.UserHomeDir()
		for _, p := range []string{
			"scarpet-tools.toml",
			filepath.Join(home, ".config", "scarpet-tools", "config.toml"),
		} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	return cfg, nil
}

// scanConfig maps the file settings onto tokenizer options.
func (c *Config) scanConfig() scarpet.Config {
	return scarpet.Config{
		AllowComments:       c.Tokenizer.AllowComments,
		AllowNewLineMarkers: c.Tokenizer.AllowNewLineMarker,
	}
}
