package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/moviedb/internal/movies"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "moviedb") {
		t.Errorf("GetConfigDir() = %v, should contain 'moviedb'", configDir)
	}

	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join("/tmp/xdg", "moviedb") {
		t.Errorf("GetConfigDir() = %v, want /tmp/xdg/moviedb", configDir)
	}
}

func TestGetConfigPathPrecedence(t *testing.T) {
	t.Setenv(PathEnvVar, "/from/env.yaml")

	got, err := GetConfigPath("/from/flag.yaml")
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != "/from/flag.yaml" {
		t.Errorf("GetConfigPath(flag) = %v, want /from/flag.yaml", got)
	}

	got, err = GetConfigPath("")
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != "/from/env.yaml" {
		t.Errorf("GetConfigPath(env) = %v, want /from/env.yaml", got)
	}

	t.Setenv(PathEnvVar, "")
	got, err = GetConfigPath("")
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(got) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", got)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.Preferences == nil {
		t.Fatal("NewConfig().Preferences should not be nil")
	}
	if cfg.Preferences.StrictValidation {
		t.Error("StrictValidation should be off by default")
	}
	if diff := cmp.Diff(movies.Seed(), cfg.SeedMovies()); diff != "" {
		t.Errorf("SeedMovies() should fall back to built-in seed (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`version: 1
seed:
  - title: Alien
    year: 1979
    rating: 85
  - title: "Heat"
    year: "1995"
    rating: "8.5"
preferences:
  strict_validation: true
  log_level: debug
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []movies.Movie{
		movies.NewMovie("Alien", "1979", "85"),
		movies.NewMovie("Heat", "1995", "8.5"),
	}
	if diff := cmp.Diff(want, cfg.SeedMovies()); diff != "" {
		t.Errorf("SeedMovies() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.Validator().(movies.NumericFields); !ok {
		t.Errorf("Validator() = %T, want movies.NumericFields", cfg.Validator())
	}
	if cfg.Preferences.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Preferences.LogLevel)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "version: [", "failed to parse config file"},
		{"wrong version", "version: 2", "unsupported config version: 2"},
		{"missing version", "seed: []", "unsupported config version: 0"},
		{"empty title", "version: 1\nseed:\n  - year: 2000\n    rating: 1\n", "seed entry 1: missing title"},
		{"empty rating", "version: 1\nseed:\n  - title: Heat\n    year: \"1995\"\n", "seed entry 1: missing rating"},
		{"empty year and rating", "version: 1\nseed:\n  - {title: Alien, year: \"1979\", rating: \"85\"}\n  - {title: Heat}\n", "seed entry 2: missing year, rating"},
		{"blank year", "version: 1\nseed:\n  - {title: Heat, year: \"\", rating: \"83\"}\n", "seed entry 1: missing year"},
		{"strict non-numeric", "version: 1\nseed:\n  - {title: Heat, year: soon, rating: \"83\"}\npreferences:\n  strict_validation: true\n", "seed entry 1: Fill out form: year must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseSeedErrorsAreValidationErrors(t *testing.T) {
	_, err := Parse([]byte("version: 1\nseed:\n  - title: Heat\n    year: \"1995\"\n"))
	var vErr *movies.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Parse() error = %v, want a *movies.ValidationError", err)
	}
	if diff := cmp.Diff([]movies.Field{movies.FieldRating}, vErr.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestParsedSeedSavesUnchanged(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\nseed:\n  - {title: Heat, year: \"1995\", rating: \"8.3 out of 10\"}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	s := movies.New(cfg.SeedMovies(), movies.WithValidator(cfg.Validator()))
	before := s.Movies()
	if s, err = s.BeginEdit(0); err != nil {
		t.Fatal(err)
	}
	if s, err = s.Submit(); err != nil {
		t.Fatalf("Submit() after BeginEdit(0) error = %v", err)
	}
	if s.Editing() {
		t.Error("Editing() = true after saving an unchanged seed record")
	}
	if diff := cmp.Diff(before, s.Movies()); diff != "" {
		t.Errorf("record changed (-before +after):\n%s", diff)
	}
}

func TestParsePartialPreferencesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\npreferences:\n  strict_validation: true\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cfg.Preferences.StrictValidation {
		t.Error("StrictValidation = false, want true")
	}
	if !cfg.Preferences.AltScreen {
		t.Error("AltScreen = false, want the default true when the file does not set it")
	}

	cfg, err = Parse([]byte("version: 1\npreferences:\n  alt_screen: false\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Preferences.AltScreen {
		t.Error("AltScreen = true, want the explicit false")
	}
}

func TestParseDefaultsPreferences(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Preferences == nil || !cfg.Preferences.AltScreen {
		t.Errorf("Preferences = %+v, want defaults", cfg.Preferences)
	}
	if _, ok := cfg.Validator().(movies.RequiredFields); !ok {
		t.Errorf("Validator() = %T, want movies.RequiredFields", cfg.Validator())
	}
}

func TestCreateDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	if err := CreateDefaultConfig(path, false); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# moviedb configuration file") {
		t.Error("saved file should start with the header comment")
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if diff := cmp.Diff(movies.Seed(), cfg.SeedMovies()); diff != "" {
		t.Errorf("seed round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestCreateDefaultConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := CreateDefaultConfig(path, false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("CreateDefaultConfig() error = %v, want ErrConfigExists", err)
	}

	if err := CreateDefaultConfig(path, true); err != nil {
		t.Fatalf("CreateDefaultConfig(force) error = %v", err)
	}
}

func TestNilConfigFallbacks(t *testing.T) {
	var cfg *Config
	if len(cfg.SeedMovies()) != 6 {
		t.Errorf("nil SeedMovies() len = %d, want 6", len(cfg.SeedMovies()))
	}
	if _, ok := cfg.Validator().(movies.RequiredFields); !ok {
		t.Errorf("nil Validator() = %T, want movies.RequiredFields", cfg.Validator())
	}
}

func BenchmarkParse(b *testing.B) {
	data := []byte("version: 1\nseed:\n  - title: A\n    year: 1\n    rating: 2\n")
	for i := 0; i < b.N; i++ {
		_, _ = Parse(data)
	}
}
