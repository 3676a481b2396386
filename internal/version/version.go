// Package version provides centralized version management for cinder.
// It supports semantic versioning and build-time injection.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info represents the full version information of a build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information for the current build.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// String renders the version info on one line.
func (i Info) String() string {
	return fmt.Sprintf("cinder v%s (%s, built %s, %s, %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

// Compare compares the current version against another semantic version
// string. It returns -1, 0 or 1 when the current version is respectively
// older, equal or newer, and an error when either string is not valid
// semver.
func Compare(other string) (int, error) {
	current, err := semver.NewVersion(Version)
	if err != nil {
		return 0, fmt.Errorf("invalid current version %q: %w", Version, err)
	}
	target, err := semver.NewVersion(other)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", other, err)
	}
	return current.Compare(target), nil
}
