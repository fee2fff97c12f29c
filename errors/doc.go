// Package errors provides the structured error type shared by the client
// packages. Every failure raised inside the library is an *AppError with a
// machine-readable code, so callers can classify causes with errors.As.
package errors
