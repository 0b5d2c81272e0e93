// Package server provides the MCP server context, health checks, and the
// dedicated metrics endpoint for the calendar service.
//
// ServerContext manages Google Calendar clients with lazy initialization and
// per-account caching. Tokens are read from disk via the file token provider,
// so a missing token surfaces when an account is first used, not at startup.
//
// HealthChecker exposes /healthz, /readyz, and /healthz/detailed for
// Kubernetes probes. MetricsServer serves Prometheus metrics on a separate
// port so operational metrics are never mixed into application traffic.
package server
