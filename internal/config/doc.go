// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional config
// file. It provides type-safe access to settings for the HTTP server, upload
// limits and the Gemini integration.
package config
