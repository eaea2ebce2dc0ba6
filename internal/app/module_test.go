package app

import (
	"testing"

	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("TUIKIT_HOME", t.TempDir())
	if err := fx.ValidateApp(Module(Params{Profile: "test"})); err != nil {
		t.Fatalf("ValidateApp() error = %v", err)
	}
}

func TestActivationSource(t *testing.T) {
	tests := []struct {
		name string
		act  any
		want string
	}{
		{"nil", nil, SourceProgram},
		{"unknown", "script", SourceProgram},
		{"editor", &Editor{}, SourcePalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := activationSource(tt.act); got != tt.want {
				t.Errorf("activationSource(%v) = %q, want %q", tt.act, got, tt.want)
			}
		})
	}
}
