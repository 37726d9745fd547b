// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional .env file and an
// optional config.yaml). It provides type-safe access to the settings the
// flashcard generator needs while keeping configuration details separate
// from business logic.
package config
