package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/arbor/internal/utils"
)

// TestRelativeLabel verifies relative label computation against the scan root.
func TestRelativeLabel(testingHandle *testing.T) {
	rootPath := filepath.Join("/tmp", "scan")

	testCases := []struct {
		name          string
		fullPath      string
		expectedLabel string
	}{
		{name: "direct child", fullPath: filepath.Join(rootPath, "folder1"), expectedLabel: "folder1"},
		{name: "nested child", fullPath: filepath.Join(rootPath, "folder1", "file1.txt"), expectedLabel: filepath.Join("folder1", "file1.txt")},
		{name: "root itself", fullPath: rootPath, expectedLabel: "."},
		{name: "unclean path", fullPath: filepath.Join(rootPath, "folder1", "..", "folder2"), expectedLabel: "folder2"},
	}

	for _, testCase := range testCases {
		actualLabel := utils.RelativeLabel(testCase.fullPath, rootPath)
		if actualLabel != testCase.expectedLabel {
			testingHandle.Fatalf("%s: expected %q, got %q", testCase.name, testCase.expectedLabel, actualLabel)
		}
	}
}
