// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// prepwise.yaml file. It provides type-safe access to application settings
// while keeping configuration details separate from business logic.
package config
