package config

import (
	"errors"

	"github.com/dshills/med/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a setting has the wrong type or an
	// unacceptable value.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrFileNotFound indicates an explicitly requested config file
	// doesn't exist.
	ErrFileNotFound = errors.New("config file not found")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
