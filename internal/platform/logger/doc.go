// Package logger builds the JSON log/slog loggers used by the server and the
// CLI. The server logs to stdout and installs its logger as the slog default;
// the CLI logs to stderr so stdout stays machine-readable. Request handlers
// find their trace-scoped logger through WithLogger and FromContext.
package logger
