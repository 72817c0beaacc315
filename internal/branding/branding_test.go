package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "zedc" {
		t.Errorf("CLIName() = %q, want %q", got, "zedc")
	}
	if got := HomeDir(); got != ".zedc" {
		t.Errorf("HomeDir() = %q, want %q", got, ".zedc")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"log_level", "ZEDC_LOG_LEVEL"},
		{"NPM_BIN", "ZEDC_NPM_BIN"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
