// Package calendar_tools provides MCP (Model Context Protocol) tools for
// Google Calendar operations.
//
// The event and scheduling tools delegate to the wire method dispatcher, so
// MCP clients receive the same JSON response shapes as the CLI. Calendar
// list and raw free/busy tools talk to the calendar client directly. All
// tools support multi-account authentication through the account argument.
package calendar_tools
