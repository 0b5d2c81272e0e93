// Package logging provides structured logging utilities for the calendar
// service.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithMethod(slog.Default(), "calendar.free_slots")
//	logger.Info("search completed",
//	    logging.Status(logging.StatusSuccess))
//
// Sanitize attendee emails before logging:
//
//	logger.Info("event created",
//	    logging.Domain(attendee))
//
// # Security Considerations
//
// Attendee and owner emails are PII: log only the anonymized hash or the
// domain, never the full address outside audit streams.
package logging
