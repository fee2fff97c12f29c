// Package config loads the client settings.
//
// Settings are read from a YAML (or JSON/TOML) file, an optional .env file
// and the process environment, in that order of precedence:
//
//	settings, err := config.Load("untappd", config.WithConfigFile(path))
//
// Environment variables map onto nested keys by underscores, so
// UNTAPPD_API_KEY sets untappd.api_key.
package config
