package config

import (
	"fmt"
	"strings"

	"github.com/gopak/minigrep/internal/search"
)

// EnvCaseInsensitive selects case-insensitive search when set to any value.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// Resolve turns positional arguments (program name already removed), the
// environment, config file settings and flag overrides into Options.
//
// Case policy precedence: flags, then CASE_INSENSITIVE, then the config file.
func Resolve(args []string, lookupEnv func(string) (string, bool), cfg Config, f Flags) (Options, error) {
	switch {
	case len(args) == 0:
		return Options{}, &ConfigError{Missing: "query"}
	case len(args) == 1:
		return Options{}, &ConfigError{Missing: "filename"}
	case len(args) > 2:
		return Options{}, &ConfigError{Msg: fmt.Sprintf("unexpected argument: %q", args[2])}
	}
	opts := Options{Query: args[0], Filename: args[1], Fuzzy: f.Fuzzy}

	policy, err := search.ParseCasePolicy(cfg.Search.CasePolicy)
	if err != nil {
		return Options{}, &ConfigError{Msg: "config", Err: err}
	}
	if lookupEnv != nil {
		if _, ok := lookupEnv(EnvCaseInsensitive); ok {
			policy = search.Insensitive
		}
	}
	switch {
	case f.IgnoreCase && f.CaseSensitive:
		return Options{}, &ConfigError{Msg: "--ignore-case and --case-sensitive cannot be combined"}
	case f.IgnoreCase:
		policy = search.Insensitive
	case f.CaseSensitive:
		policy = search.Sensitive
	}
	opts.CasePolicy = policy

	opts.LineNumbers = boolOr(f.LineNumbers, cfg.Output.LineNumbers)
	opts.Count = boolOr(f.Count, cfg.Output.Count)

	opts.Format = strings.ToLower(firstNonEmpty(f.Format, cfg.Output.Format, FormatPlain))
	if opts.Format != FormatPlain && opts.Format != FormatTable {
		return Options{}, &ConfigError{Msg: fmt.Sprintf("unknown format: %q (want plain or table)", opts.Format)}
	}
	opts.Color = ColorMode(strings.ToLower(firstNonEmpty(f.Color, string(cfg.Output.Color), string(ColorAuto))))
	switch opts.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Options{}, &ConfigError{Msg: fmt.Sprintf("unknown color mode: %q (want auto, always or never)", opts.Color)}
	}
	return opts, nil
}

func boolOr(flag, fromConfig *bool) bool {
	if flag != nil {
		return *flag
	}
	if fromConfig != nil {
		return *fromConfig
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
