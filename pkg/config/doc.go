// Package config loads phony's settings.
//
// Layers, later ones winning:
//
//  1. embedded defaults
//  2. $XDG_CONFIG_HOME/phony/config.toml (or config.yaml)
//  3. an explicit file given with --config
//  4. PHONY_* environment variables (PHONY_FORMAT_STYLE sets format.style)
//  5. command-line overrides
package config
