// Package common provides shared utilities for MCP tool implementations:
// account resolution from request arguments and instrumentation wrappers
// for tool handlers.
package common
