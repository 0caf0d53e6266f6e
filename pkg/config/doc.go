// Package config handles configuration management for dictator.
//
// Values are layered with koanf: embedded defaults, the user config file
// under XDG_CONFIG_HOME, the .dictator.toml at the dictator root and
// finally DICTATOR_* environment variables. Command-line flags are applied
// on top by the CLI.
package config
