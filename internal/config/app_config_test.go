package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/uicrumb/uicrumb/internal/config"
	"github.com/uicrumb/uicrumb/internal/utils"
)

func writeConfigurationFile(testInstance *testing.T, filePath string, contents string) {
	testInstance.Helper()
	if mkdirError := os.MkdirAll(filepath.Dir(filePath), 0o755); mkdirError != nil {
		testInstance.Fatalf("create configuration directory: %v", mkdirError)
	}
	if writeError := os.WriteFile(filePath, []byte(contents), 0o600); writeError != nil {
		testInstance.Fatalf("write configuration file: %v", writeError)
	}
}

// TestLoadApplicationConfigurationMergesLocalOverGlobal verifies that local
// configuration values override global ones field by field.
func TestLoadApplicationConfigurationMergesLocalOverGlobal(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	testInstance.Setenv("HOME", homeDirectory)
	writeConfigurationFile(testInstance,
		filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName),
		"resolve:\n  style: arrow\n  values: false\n  format: raw\n")

	workingDirectory := testInstance.TempDir()
	writeConfigurationFile(testInstance,
		filepath.Join(workingDirectory, utils.ConfigFileName),
		"resolve:\n  style: chevron\n")

	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testInstance.Fatalf("load configuration: %v", loadError)
	}
	if loadedConfiguration.Resolve.Style != config.SeparatorStyleChevron {
		testInstance.Errorf("style %q, expected chevron", loadedConfiguration.Resolve.Style)
	}
	if loadedConfiguration.Resolve.Values == nil || *loadedConfiguration.Resolve.Values {
		testInstance.Error("values=false from the global file must survive the merge")
	}
	if loadedConfiguration.Resolve.Format != "raw" {
		testInstance.Errorf("format %q, expected raw", loadedConfiguration.Resolve.Format)
	}
}

// TestLoadApplicationConfigurationMissingFiles verifies that absent
// configuration files yield an empty configuration, not an error.
func TestLoadApplicationConfigurationMissingFiles(testInstance *testing.T) {
	testInstance.Setenv("HOME", testInstance.TempDir())
	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: testInstance.TempDir()})
	if loadError != nil {
		testInstance.Fatalf("load configuration: %v", loadError)
	}
	if loadedConfiguration.Resolve.Style != "" || loadedConfiguration.Resolve.Values != nil {
		testInstance.Errorf("expected an empty configuration, got %+v", loadedConfiguration.Resolve)
	}
}

// TestLoadApplicationConfigurationExplicitPath verifies that an explicit file
// path wins over the working directory's default file.
func TestLoadApplicationConfigurationExplicitPath(testInstance *testing.T) {
	testInstance.Setenv("HOME", testInstance.TempDir())
	workingDirectory := testInstance.TempDir()
	writeConfigurationFile(testInstance,
		filepath.Join(workingDirectory, utils.ConfigFileName),
		"resolve:\n  style: pipe\n")
	explicitPath := filepath.Join(workingDirectory, "alternate.yaml")
	writeConfigurationFile(testInstance, explicitPath, "resolve:\n  style: arrow\n")

	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "alternate.yaml",
	})
	if loadError != nil {
		testInstance.Fatalf("load configuration: %v", loadError)
	}
	if loadedConfiguration.Resolve.Style != config.SeparatorStyleArrow {
		testInstance.Errorf("style %q, expected arrow", loadedConfiguration.Resolve.Style)
	}
}

// TestEffectiveSeparator verifies separator resolution precedence.
func TestEffectiveSeparator(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration config.ResolveCommandConfiguration
		expected      string
	}{
		{name: "explicit separator wins", configuration: config.ResolveCommandConfiguration{Style: config.SeparatorStyleArrow, Separator: " / "}, expected: " / "},
		{name: "pipe style", configuration: config.ResolveCommandConfiguration{Style: config.SeparatorStylePipe}, expected: " | "},
		{name: "arrow style", configuration: config.ResolveCommandConfiguration{Style: config.SeparatorStyleArrow}, expected: " > "},
		{name: "chevron style", configuration: config.ResolveCommandConfiguration{Style: config.SeparatorStyleChevron}, expected: " » "},
		{name: "unknown style defaults to pipe", configuration: config.ResolveCommandConfiguration{Style: "zigzag"}, expected: " | "},
		{name: "empty configuration defaults to pipe", configuration: config.ResolveCommandConfiguration{}, expected: " | "},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			if separator := testCase.configuration.EffectiveSeparator(); separator != testCase.expected {
				testInstance.Errorf("separator %q, expected %q", separator, testCase.expected)
			}
		})
	}
}

// TestMergeFieldGranularity verifies that merging overrides only the fields
// set in the override configuration.
func TestMergeFieldGranularity(testInstance *testing.T) {
	baseValues := true
	baseConfiguration := config.ApplicationConfiguration{Resolve: config.ResolveCommandConfiguration{
		Style:  config.SeparatorStylePipe,
		Values: &baseValues,
		Format: "raw",
	}}
	overrideConfiguration := config.ApplicationConfiguration{Resolve: config.ResolveCommandConfiguration{
		Style: config.SeparatorStyleArrow,
	}}
	merged := baseConfiguration.Merge(overrideConfiguration)
	if merged.Resolve.Style != config.SeparatorStyleArrow {
		testInstance.Errorf("style %q, expected arrow", merged.Resolve.Style)
	}
	if merged.Resolve.Values == nil || !*merged.Resolve.Values {
		testInstance.Error("unset override fields must keep the base value")
	}
	if merged.Resolve.Format != "raw" {
		testInstance.Errorf("format %q, expected raw", merged.Resolve.Format)
	}
}
