// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides
// type-safe access to server and API settings while keeping configuration
// details separate from chart computation.
package config
