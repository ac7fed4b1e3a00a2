package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/moviedb/internal/movies"
)

const (
	appName    = "moviedb"
	configFile = "config.yaml"

	// PathEnvVar overrides the config file location.
	PathEnvVar = "MOVIEDB_CONFIG"
)

// ErrConfigExists is returned by CreateDefaultConfig when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
// An explicit path wins over MOVIEDB_CONFIG, which wins over the OS default.
func GetConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(PathEnvVar); env != "" {
		return env, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// LoadFile reads the configuration from path. If the file doesn't exist,
// returns the default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates configuration YAML. Preferences the file
// leaves out keep their default values. Every seed entry must pass the
// validator the preferences select, so any seed record can be saved again
// unchanged.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Preferences: defaultPreferences()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, CurrentVersion)
	}

	// An explicit "preferences:" with no value decodes to nil
	if cfg.Preferences == nil {
		cfg.Preferences = defaultPreferences()
	}

	validator := cfg.Validator()
	for i, s := range cfg.Seed {
		if err := validator.Validate(movies.Draft{Title: s.Title, Year: s.Year, Rating: s.Rating}); err != nil {
			return nil, seedError(i, err)
		}
	}

	return &cfg, nil
}

func seedError(i int, err error) error {
	var vErr *movies.ValidationError
	if errors.As(err, &vErr) && len(vErr.Missing) > 0 {
		names := make([]string, len(vErr.Missing))
		for j, f := range vErr.Missing {
			names[j] = string(f)
		}
		return fmt.Errorf("seed entry %d: missing %s: %w", i+1, strings.Join(names, ", "), err)
	}
	return fmt.Errorf("seed entry %d: %w", i+1, err)
}

// SaveTo writes the configuration to path.
// Performs an atomic write to prevent corruption on crash.
func (c *Config) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# moviedb configuration file
#
# seed: records the editor starts with. Records added or edited in the
# editor are kept in memory only and are not written back here.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes a config file listing the built-in seed records.
// It refuses to replace an existing file unless force is set.
func CreateDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	cfg := NewConfig()
	cfg.Seed = SeedFromMovies(movies.Seed())
	return cfg.SaveTo(path)
}
