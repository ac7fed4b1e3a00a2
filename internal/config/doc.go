// Package config provides user configuration for moviedb.
//
// The configuration is a YAML file holding the records the editor starts
// with and a few application preferences. It is never written by the editor
// itself: records added in a session live only in memory and are gone on
// exit. The file is created by `moviedb config init` and edited by hand.
//
// # Configuration File Location
//
// The file is looked up in this order:
//   - the --config flag
//   - the MOVIEDB_CONFIG environment variable
//   - Linux: $XDG_CONFIG_HOME/moviedb/config.yaml or $HOME/.config/moviedb/config.yaml
//   - macOS: $HOME/.config/moviedb/config.yaml
//   - Windows: %LOCALAPPDATA%\moviedb\config.yaml
//
// A missing file is not an error; the built-in defaults apply.
//
// # Usage Example
//
//	path, err := config.GetConfigPath(flagValue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := config.LoadFile(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state := movies.New(cfg.SeedMovies(),
//	    movies.WithValidator(cfg.Validator()),
//	)
package config
