// Package config loads and validates the service configuration from
// environment variables.
package config
