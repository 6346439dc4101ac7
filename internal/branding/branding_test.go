package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "appkit" {
		t.Errorf("CLIName() = %q, want appkit", got)
	}
	if got := HomeDir(); got != ".appkit" {
		t.Errorf("HomeDir() = %q, want .appkit", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("git_backend"); got != "APPKIT_GIT_BACKEND" {
		t.Errorf("EnvVar() = %q, want APPKIT_GIT_BACKEND", got)
	}
}
