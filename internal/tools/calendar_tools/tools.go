package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/fgp-services/calendar/internal/calendar"
	"github.com/fgp-services/calendar/internal/server"
	"github.com/fgp-services/calendar/internal/service"
)

// getCalendarClient retrieves or creates a calendar client for the specified account.
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		if !calendar.HasTokenForAccount(account) {
			return nil, fmt.Errorf("no Google OAuth token found for account %q; save a token to ~/.fgp/auth/google/calendar-%s.token and retry", account, account)
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// dispatchMethod routes a tool invocation through the wire method dispatcher
// and renders the result as JSON, so MCP clients see the same response
// shapes as the CLI. The typed dispatch result is returned alongside the
// rendered tool result for handlers that need the real payload fields.
func dispatchMethod(ctx context.Context, sc *server.ServerContext, account, method string, params map[string]any) (any, *mcp.CallToolResult, error) {
	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error()), nil
	}

	var opts []service.Option
	if metrics := sc.Metrics(); metrics != nil {
		opts = append(opts, service.WithMetrics(metrics))
	}

	svc := service.NewService(client, opts...)
	result, err := svc.Dispatch(ctx, method, params)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", method, err)), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	return result, mcp.NewToolResultText(string(data)), nil
}

// dispatchTool is dispatchMethod for handlers that only need the rendered
// tool result.
func dispatchTool(ctx context.Context, sc *server.ServerContext, account, method string, params map[string]any) (*mcp.CallToolResult, error) {
	_, result, err := dispatchMethod(ctx, sc, account, method, params)
	return result, err
}

// RegisterCalendarTools registers all calendar tools with the MCP server.
// In read-only mode, tools that mutate events are not registered.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := RegisterEventTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	if err := RegisterCalendarListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register calendar list tools: %w", err)
	}

	if err := RegisterSchedulingTools(s, sc); err != nil {
		return fmt.Errorf("failed to register scheduling tools: %w", err)
	}

	return nil
}
