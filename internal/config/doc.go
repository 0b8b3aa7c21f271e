// Package config provides layered configuration for med.
//
// Settings come from four layers, lowest to highest precedence: built-in
// defaults, the user config file (TOML or YAML), MED_* environment
// variables and command-line overrides. The merged result is decoded into
// a typed Config and validated.
//
// Example config.toml:
//
//	[editor]
//	line_numbers = true
//	escape_timeout = "25ms"
//
//	[keys]
//	save = ["Ctrl+S"]
//	quit = ["Ctrl+Q", "Ctrl+X"]
//
//	[theme]
//	gutter = "#808080"
//	status_fg = "#000000"
//	status_bg = "#c0c0c0"
//
//	[logging]
//	level = "info"
//	file = "/tmp/med.log"
package config
