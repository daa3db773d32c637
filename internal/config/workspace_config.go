package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"branchwire.dev/branchwire/internal/upstream"
)

// FileName is the workspace configuration file inside the workspace root
const FileName = ".branchwire_config"

// WorkspaceConfig represents the workspace configuration
type WorkspaceConfig struct {
	Initialized    *bool   `json:"initialized,omitempty"`
	FallbackBranch *string `json:"fallbackBranch,omitempty"`
	LogFile        *string `json:"logFile,omitempty"`
}

// Path returns the configuration file path for root
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// GetWorkspaceConfig reads the workspace configuration
func GetWorkspaceConfig(root string) (*WorkspaceConfig, error) {
	data, err := os.ReadFile(Path(root))
	if errors.Is(err, os.ErrNotExist) {
		// Config doesn't exist - return default
		return &WorkspaceConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace config: %w", err)
	}

	var config WorkspaceConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse workspace config: %w", err)
	}

	return &config, nil
}

// IsInitialized checks if the workspace has been initialized
func IsInitialized(root string) bool {
	config, err := GetWorkspaceConfig(root)
	if err != nil {
		return false
	}
	return config.Initialized != nil && *config.Initialized
}

// Initialize marks root as a workspace, creating it if needed. An existing
// configuration is kept.
func Initialize(root string) error {
	if err := os.MkdirAll(root, 0750); err != nil {
		return fmt.Errorf("failed to create workspace root: %w", err)
	}

	config, err := GetWorkspaceConfig(root)
	if err != nil {
		config = &WorkspaceConfig{}
	}

	initialized := true
	config.Initialized = &initialized
	return write(root, config)
}

// GetFallbackBranch returns the configured fallback branch, or "develop" as default
func GetFallbackBranch(root string) (string, error) {
	config, err := GetWorkspaceConfig(root)
	if err != nil {
		return "", err
	}

	if config.FallbackBranch != nil && *config.FallbackBranch != "" {
		return *config.FallbackBranch, nil
	}

	return upstream.DefaultFallbackBranch, nil
}

// SetFallbackBranch updates the fallback branch in the config
func SetFallbackBranch(root string, branchName string) error {
	if branchName == "" {
		return fmt.Errorf("fallback branch must not be empty")
	}

	config, err := GetWorkspaceConfig(root)
	if err != nil {
		config = &WorkspaceConfig{}
	}

	config.FallbackBranch = &branchName
	return write(root, config)
}

// GetLogFile returns the configured log file path, or "" when unset
func GetLogFile(root string) (string, error) {
	config, err := GetWorkspaceConfig(root)
	if err != nil {
		return "", err
	}

	if config.LogFile != nil {
		return *config.LogFile, nil
	}
	return "", nil
}

func write(root string, config *WorkspaceConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(Path(root), configJSON, 0600)
}
