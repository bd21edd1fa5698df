package config

import (
	"fmt"

	"github.com/gopak/minigrep/internal/search"
	"gopkg.in/yaml.v3"
)

const (
	FormatPlain = "plain"
	FormatTable = "table"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalYAML accepts the named modes as well as a plain boolean.
func (c *ColorMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid color node kind: %d", value.Kind)
	}
	if value.Tag == "!!bool" {
		var on bool
		if err := value.Decode(&on); err != nil {
			return err
		}
		if on {
			*c = ColorAlways
		} else {
			*c = ColorNever
		}
		return nil
	}
	*c = ColorMode(value.Value)
	return nil
}

type SearchSettings struct {
	CasePolicy string `yaml:"case_policy" json:"case_policy,omitempty"`
}

type OutputSettings struct {
	Format      string    `yaml:"format" json:"format,omitempty"`
	Color       ColorMode `yaml:"color" json:"color,omitempty"`
	LineNumbers *bool     `yaml:"line_numbers" json:"line_numbers,omitempty"`
	Count       *bool     `yaml:"count" json:"count,omitempty"`
}

// Config is the merged content of the config directory.
type Config struct {
	Search SearchSettings `yaml:"search" json:"search"`
	Output OutputSettings `yaml:"output" json:"output"`
}

// Flags carries command-line overrides. Nil pointers mean "not given".
type Flags struct {
	IgnoreCase    bool
	CaseSensitive bool
	Fuzzy         bool
	LineNumbers   *bool
	Count         *bool
	Format        string
	Color         string
}

// Options is a fully resolved run configuration.
type Options struct {
	Query       string
	Filename    string
	CasePolicy  search.CasePolicy
	Fuzzy       bool
	LineNumbers bool
	Count       bool
	Format      string
	Color       ColorMode
}
