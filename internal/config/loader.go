package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopak/minigrep/internal/assets"
	"gopkg.in/yaml.v3"
)

// Dir returns the config directory: the directory of cfgFile when given,
// otherwise minigrep under the user config dir (the invoking user's under sudo).
func Dir(cfgFile string) string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "minigrep")
}

// Load merges every YAML file in dir over the built-in defaults and validates
// the result. A missing dir yields the defaults.
func Load(dir string) (Config, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadDefaultsAndFiles(assets.DefaultConfig(), files)
	if err != nil {
		return Config{}, err
	}
	if err := ValidateAgainstSchema(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFromFiles(files []string) (Config, error) {
	return LoadDefaultsAndFiles(nil, files)
}

func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var merged Config
	if len(defaultsYAML) > 0 {
		if err := decode(defaultsYAML, &merged); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := decode(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	return merged, nil
}

// decode rejects unknown keys so typos do not silently fall back to defaults.
func decode(b []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return sortedYAML(files), nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.Search.CasePolicy != "" {
		out.Search.CasePolicy = overlay.Search.CasePolicy
	}
	out.Output = mergeOutput(out.Output, overlay.Output)
	return out
}

func mergeOutput(a, b OutputSettings) OutputSettings {
	out := a
	if b.Format != "" {
		out.Format = b.Format
	}
	if b.Color != "" {
		out.Color = b.Color
	}
	if b.LineNumbers != nil {
		out.LineNumbers = b.LineNumbers
	}
	if b.Count != nil {
		out.Count = b.Count
	}
	return out
}
