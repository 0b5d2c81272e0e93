// Package cmd implements the fgp-calendar command line interface.
//
// It provides subcommands for invoking calendar methods directly (call),
// running the MCP server (serve), and generating tool documentation
// (generate-docs).
package cmd
