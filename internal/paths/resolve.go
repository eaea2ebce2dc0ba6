package paths

import "github.com/matheus3301/tuikit/internal/config"

const DefaultProfile = "default"

// ResolveProfile determines the active profile name using precedence:
// 1. flagOverride (--profile flag)
// 2. config.toml profile
// 3. "default"
func ResolveProfile(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	cfg, err := config.Load(ConfigPath())
	if err == nil && cfg.Profile != "" {
		return cfg.Profile
	}
	return DefaultProfile
}
