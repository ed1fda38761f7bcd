package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uicrumb/uicrumb/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultConfigurationTemplate = `resolve:
  style: pipe
  values: true
  clipboard: true
  format: raw
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the default configuration to the requested
// target and returns the destination path.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if mkdirErr := os.MkdirAll(configDirectory, 0o755); mkdirErr != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configDirectory, mkdirErr)
		}
		destinationPath = filepath.Join(configDirectory, utils.ConfigFileName)
	default:
		return "", fmt.Errorf("unsupported configuration target %q", target)
	}

	if !options.Force {
		if _, statErr := os.Stat(destinationPath); statErr == nil {
			return "", fmt.Errorf("configuration %s already exists; use force to overwrite", destinationPath)
		}
	}
	if writeErr := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), 0o644); writeErr != nil {
		return "", fmt.Errorf("write configuration %s: %w", destinationPath, writeErr)
	}
	return destinationPath, nil
}
