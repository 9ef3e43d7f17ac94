// Package config loads solver settings with viper.
//
// Settings come from, in increasing order of precedence:
//   - built-in defaults (DefaultConfig)
//   - a config file: the --config path, or wordsearch.{yaml,toml,json} in
//     the working directory or the user config directory
//   - WORDSEARCH_* environment variables, e.g. WORDSEARCH_WORKERS=4
//
// Command-line flags are applied on top by the caller.
package config
