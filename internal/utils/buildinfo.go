package utils

import (
	"os/exec"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// GetApplicationVersion determines the application version from Go build
// info, falling back to git describe for source checkouts.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}

	// #nosec G204
	gitDescribeOutput, gitDescribeError := exec.Command("git", "describe", "--tags", "--long", "--dirty").Output()
	if gitDescribeError == nil && len(gitDescribeOutput) > 0 {
		return strings.TrimSpace(string(gitDescribeOutput))
	}
	return unknownVersion
}
