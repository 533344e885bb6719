package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/arbor/internal/config"
	"github.com/temirov/arbor/internal/utils"
)

const (
	globalConfigurationContent = `scan:
  include_hidden: true
  max_depth: 5
output:
  directory: exports
`
	localConfigurationContent = `scan:
  max_depth: 2
render:
  full_path: true
`
)

// writeConfiguration writes content to path, creating parent directories.
func writeConfiguration(testingHandle *testing.T, path string, content string) {
	testingHandle.Helper()
	if makeDirectoryError := os.MkdirAll(filepath.Dir(path), 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("mkdir for %s: %v", path, makeDirectoryError)
	}
	if writeError := os.WriteFile(path, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("writing %s: %v", path, writeError)
	}
}

// TestLoadApplicationConfigurationLayering verifies that local values overlay
// global ones while untouched global values survive.
func TestLoadApplicationConfigurationLayering(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	workingDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)

	globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
	writeConfiguration(testingHandle, globalPath, globalConfigurationContent)
	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	writeConfiguration(testingHandle, localPath, localConfigurationContent)

	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}

	if loadedConfiguration.Scan.IncludeHidden == nil || !*loadedConfiguration.Scan.IncludeHidden {
		testingHandle.Fatalf("expected include_hidden from the global file to survive")
	}
	if loadedConfiguration.Scan.MaxDepth == nil || *loadedConfiguration.Scan.MaxDepth != 2 {
		testingHandle.Fatalf("expected local max_depth 2 to override the global value")
	}
	if loadedConfiguration.Render.FullPath == nil || !*loadedConfiguration.Render.FullPath {
		testingHandle.Fatalf("expected full_path from the local file")
	}
	if loadedConfiguration.Output.Directory != "exports" {
		testingHandle.Fatalf("expected output directory exports, got %q", loadedConfiguration.Output.Directory)
	}
}

// TestLoadApplicationConfigurationMissingFiles verifies that missing files
// produce an empty configuration rather than an error.
func TestLoadApplicationConfigurationMissingFiles(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())

	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: testingHandle.TempDir(),
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loadedConfiguration.Scan.IncludeHidden != nil || loadedConfiguration.Scan.MaxDepth != nil {
		testingHandle.Fatalf("expected an empty configuration, got %+v", loadedConfiguration)
	}
}

// TestInitializeConfigurationLocal verifies the local template writer and its
// overwrite guard.
func TestInitializeConfigurationLocal(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()

	writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializeError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initializeError)
	}
	if writtenPath != filepath.Join(workingDirectory, utils.ConfigFileName) {
		testingHandle.Fatalf("unexpected configuration path %s", writtenPath)
	}
	templateContent, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("reading template: %v", readError)
	}
	if !strings.Contains(string(templateContent), "directories_only") {
		testingHandle.Fatalf("template misses scan options:\n%s", templateContent)
	}

	_, secondInitializeError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if secondInitializeError == nil {
		testingHandle.Fatalf("expected an error without --force on an existing file")
	}
}
