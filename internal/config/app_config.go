// Package config loads and merges application configuration from global and
// local configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/uicrumb/uicrumb/internal/utils"
)

// Separator style names accepted in configuration and on the command line.
const (
	SeparatorStylePipe    = "pipe"
	SeparatorStyleArrow   = "arrow"
	SeparatorStyleChevron = "chevron"
)

// separatorLiterals maps each separator style to its literal segment joiner.
var separatorLiterals = map[string]string{
	SeparatorStylePipe:    " | ",
	SeparatorStyleArrow:   " > ",
	SeparatorStyleChevron: " » ",
}

// SeparatorForStyle returns the literal separator for a style name.
func SeparatorForStyle(styleName string) (string, bool) {
	literal, known := separatorLiterals[styleName]
	return literal, known
}

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Resolve ResolveCommandConfiguration `mapstructure:"resolve"`
}

// ResolveCommandConfiguration defines defaults for the resolve command.
type ResolveCommandConfiguration struct {
	// Style names one of the enumerated separator styles.
	Style string `mapstructure:"style"`
	// Separator overrides the style with a literal separator string.
	Separator string `mapstructure:"separator"`
	// Values gates the adjacent-value lookup for grouping labels.
	Values *bool `mapstructure:"values"`
	// Clipboard copies resolved paths to the system clipboard.
	Clipboard *bool `mapstructure:"clipboard"`
	// Format selects raw or json output.
	Format string `mapstructure:"format"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	if localPath != "" {
		localConfig, loadErr := loadConfigurationFromPath(localPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(localConfig)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Resolve = result.Resolve.merge(override.Resolve)
	return result
}

func (config ResolveCommandConfiguration) merge(override ResolveCommandConfiguration) ResolveCommandConfiguration {
	result := config
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.Separator != "" {
		result.Separator = override.Separator
	}
	if override.Values != nil {
		result.Values = cloneBool(override.Values)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

// EffectiveSeparator resolves the literal separator from the configuration:
// an explicit separator wins, then the named style, then the pipe style.
func (config ResolveCommandConfiguration) EffectiveSeparator() string {
	if config.Separator != "" {
		return config.Separator
	}
	if literal, known := SeparatorForStyle(config.Style); known {
		return literal
	}
	return separatorLiterals[SeparatorStylePipe]
}
