// Package logger provides structured logging for the client packages using
// zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("api")
//	log.Debug("exchange completed", logger.Fields("status", 200))
package logger
