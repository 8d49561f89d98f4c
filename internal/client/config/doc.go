// Package config loads runtime settings for the template fill CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
//
//  1. Built-in defaults.
//  2. A JSON config file given via -c/-config.
//  3. Command-line flags.
package config
