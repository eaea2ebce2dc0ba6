package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// HomeEnv overrides the base directory when set.
const HomeEnv = "TUIKIT_HOME"

var profileRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateProfile checks that name conforms to profile naming rules.
func ValidateProfile(name string) error {
	if !profileRegexp.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must match ^[a-z0-9_-]{1,64}$", name)
	}
	return nil
}

// BaseDir returns $TUIKIT_HOME, or ~/.tuikit.
func BaseDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tuikit")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// ProfileDir returns the directory holding one profile's state.
func ProfileDir(profile string) string {
	return filepath.Join(BaseDir(), "profiles", profile)
}

// DBPath returns the profile's action state database.
func DBPath(profile string) string {
	return filepath.Join(ProfileDir(profile), "state.db")
}

// LogDir returns the profile's log directory.
func LogDir(profile string) string {
	return filepath.Join(ProfileDir(profile), "logs")
}

// LogPath returns the log file path.
func LogPath(profile string) string {
	return filepath.Join(LogDir(profile), "tuikit.log")
}

// EnsureDir creates the profile directory tree with proper permissions.
func EnsureDir(profile string) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	for _, d := range []string{ProfileDir(profile), LogDir(profile)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
