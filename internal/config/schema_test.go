package config

import "testing"

func TestValidateAgainstSchema_Valid(t *testing.T) {
	on := true
	cfg := Config{
		Search: SearchSettings{CasePolicy: "insensitive"},
		Output: OutputSettings{Format: FormatTable, Color: ColorNever, LineNumbers: &on},
	}
	if err := ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("expected valid schema, got error: %v", err)
	}
}

func TestValidateAgainstSchema_Empty(t *testing.T) {
	if err := ValidateAgainstSchema(Config{}); err != nil {
		t.Fatalf("expected empty config to be valid, got error: %v", err)
	}
}

func TestValidateAgainstSchema_Invalid(t *testing.T) {
	tests := []Config{
		{Search: SearchSettings{CasePolicy: "folded"}},
		{Output: OutputSettings{Format: "json"}},
		{Output: OutputSettings{Color: "sometimes"}},
	}
	for _, cfg := range tests {
		if err := ValidateAgainstSchema(cfg); err == nil {
			t.Fatalf("expected schema error for %+v", cfg)
		}
	}
}
