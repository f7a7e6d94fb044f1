package version

import (
	"fmt"
	"runtime"
)

var (
	Version             string = "v0.1.0" // Version is updated by hand at each release and follows SemVer (https://semver.org)
	GitCommit, GitState string            // GitCommit is overwritten by the build system
	BuildDate           string            // BuildDate is overwritten by the build system
)

func ToDetailVersion() string {
	return fmt.Sprintf("version=%s git=%s build=%s", Version, GitCommit, BuildDate)
}

// Info is the version block shown by the node info endpoint and the
// `version` command.
func Info() map[string]string {
	return map[string]string{
		"version":    Version,
		"git-commit": GitCommit,
		"git-state":  GitState,
		"build-date": BuildDate,
		"go-version": runtime.Version(),
	}
}
