package config

import (
	"errors"
	"testing"

	"github.com/gopak/minigrep/internal/search"
)

func noEnv(string) (string, bool) { return "", false }

func env(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestResolve_MissingArguments(t *testing.T) {
	tests := []struct {
		args    []string
		missing string
	}{
		{nil, "query"},
		{[]string{"needle"}, "filename"},
	}
	for _, tt := range tests {
		_, err := Resolve(tt.args, noEnv, Config{}, Flags{})
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("%v: want *ConfigError, got %v", tt.args, err)
		}
		if ce.Missing != tt.missing {
			t.Fatalf("%v: want missing %q, got %q", tt.args, tt.missing, ce.Missing)
		}
		if ce.Error() != "not enough arguments: missing "+tt.missing {
			t.Fatalf("unexpected message: %s", ce.Error())
		}
	}
}

func TestResolve_ExtraArgument(t *testing.T) {
	_, err := Resolve([]string{"a", "b", "c"}, noEnv, Config{}, Flags{})
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Missing != "" {
		t.Fatalf("want extra-argument ConfigError, got %v", err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	opts, err := Resolve([]string{"someQuery", "someFile.txt"}, noEnv, Config{}, Flags{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if opts.Query != "someQuery" || opts.Filename != "someFile.txt" {
		t.Fatalf("positionals not assigned: %+v", opts)
	}
	if opts.CasePolicy != search.Sensitive {
		t.Fatalf("default should be case-sensitive")
	}
	if opts.Format != FormatPlain || opts.Color != ColorAuto || opts.LineNumbers || opts.Count || opts.Fuzzy {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestResolve_CasePolicyPrecedence(t *testing.T) {
	insensitiveCfg := Config{Search: SearchSettings{CasePolicy: "insensitive"}}
	tests := []struct {
		name  string
		env   map[string]string
		cfg   Config
		flags Flags
		want  search.CasePolicy
	}{
		{"default", nil, Config{}, Flags{}, search.Sensitive},
		{"env set", map[string]string{EnvCaseInsensitive: "1"}, Config{}, Flags{}, search.Insensitive},
		{"env set empty", map[string]string{EnvCaseInsensitive: ""}, Config{}, Flags{}, search.Insensitive},
		{"config file", nil, insensitiveCfg, Flags{}, search.Insensitive},
		{"flag beats env", map[string]string{EnvCaseInsensitive: "1"}, Config{}, Flags{CaseSensitive: true}, search.Sensitive},
		{"flag beats config", nil, insensitiveCfg, Flags{CaseSensitive: true}, search.Sensitive},
		{"ignore-case flag", nil, Config{}, Flags{IgnoreCase: true}, search.Insensitive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Resolve([]string{"q", "f"}, env(tt.env), tt.cfg, tt.flags)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if opts.CasePolicy != tt.want {
				t.Fatalf("want %v, got %v", tt.want, opts.CasePolicy)
			}
		})
	}
}

func TestResolve_ConflictingCaseFlags(t *testing.T) {
	_, err := Resolve([]string{"q", "f"}, noEnv, Config{}, Flags{IgnoreCase: true, CaseSensitive: true})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestResolve_OutputOverrides(t *testing.T) {
	yes, no := true, false
	cfg := Config{Output: OutputSettings{Format: FormatTable, Color: ColorNever, LineNumbers: &yes, Count: &yes}}

	opts, err := Resolve([]string{"q", "f"}, noEnv, cfg, Flags{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if opts.Format != FormatTable || opts.Color != ColorNever || !opts.LineNumbers || !opts.Count {
		t.Fatalf("config not applied: %+v", opts)
	}

	opts, err = Resolve([]string{"q", "f"}, noEnv, cfg, Flags{Format: "PLAIN", Color: "always", LineNumbers: &no, Count: &no})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if opts.Format != FormatPlain || opts.Color != ColorAlways || opts.LineNumbers || opts.Count {
		t.Fatalf("flags not applied: %+v", opts)
	}
}

func TestResolve_BadValues(t *testing.T) {
	cases := []struct {
		cfg   Config
		flags Flags
	}{
		{Config{}, Flags{Format: "json"}},
		{Config{}, Flags{Color: "rainbow"}},
		{Config{Search: SearchSettings{CasePolicy: "folded"}}, Flags{}},
	}
	for _, c := range cases {
		_, err := Resolve([]string{"q", "f"}, noEnv, c.cfg, c.flags)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("%+v: want ConfigError, got %v", c, err)
		}
	}
}
