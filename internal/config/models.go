package config

import "github.com/muurk/moviedb/internal/movies"

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Seed        []SeedMovie  `yaml:"seed,omitempty"` // Records loaded at startup; empty means the built-in list
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// SeedMovie is one record of the startup list.
// Year and rating are strings so values are shown exactly as written.
type SeedMovie struct {
	Title  string `yaml:"title"`
	Year   string `yaml:"year"`
	Rating string `yaml:"rating"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	StrictValidation bool   `yaml:"strict_validation"`   // Require numeric year and rating
	AltScreen        bool   `yaml:"alt_screen"`          // Run the editor in the terminal's alternate screen
	LogLevel         string `yaml:"log_level,omitempty"` // debug, info, warn, error; empty is silent
	LogFile          string `yaml:"log_file,omitempty"`  // Where logs go while the editor owns the terminal
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		StrictValidation: false,
		AltScreen:        true,
	}
}

// SeedMovies returns the startup records, falling back to movies.Seed when
// the file lists none.
func (c *Config) SeedMovies() []movies.Movie {
	if c == nil || len(c.Seed) == 0 {
		return movies.Seed()
	}
	out := make([]movies.Movie, len(c.Seed))
	for i, s := range c.Seed {
		out[i] = movies.NewMovie(s.Title, s.Year, s.Rating)
	}
	return out
}

// Validator returns the submit validator selected by the preferences.
func (c *Config) Validator() movies.Validator {
	if c == nil || c.Preferences == nil {
		return movies.ValidatorFor(false)
	}
	return movies.ValidatorFor(c.Preferences.StrictValidation)
}

// SeedFromMovies converts records into seed entries.
func SeedFromMovies(records []movies.Movie) []SeedMovie {
	out := make([]SeedMovie, len(records))
	for i, m := range records {
		out[i] = SeedMovie{Title: m.Title, Year: m.Year, Rating: m.Rating}
	}
	return out
}
