// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config.yaml, and environment
// variables prefixed with WEB420_). It provides type-safe access to the
// settings needed by the server while keeping configuration details separate
// from request handling.
package config
