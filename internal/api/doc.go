// Package api handles incoming HTTP requests, multipart upload parsing and
// response formatting. It adapts HTTP to the flashcard service and maps
// service errors to status codes and client-safe messages.
package api
