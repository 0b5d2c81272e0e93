package calendar_tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/fgp-services/calendar/internal/instrumentation"
	"github.com/fgp-services/calendar/internal/server"
	"github.com/fgp-services/calendar/internal/tools/common"
)

// RegisterEventTools registers event-related tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	todayTool := mcp.NewTool("calendar_today",
		mcp.WithDescription("List today's events on the primary calendar"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(todayTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_today", instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleToday(ctx, request, sc)
		}))

	upcomingTool := mcp.NewTool("calendar_upcoming",
		mcp.WithDescription("List upcoming events on the primary calendar"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithNumber("days",
			mcp.Description("Number of days to look ahead (default: 7)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of events to return (default: 20)"),
		),
	)

	s.AddTool(upcomingTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_upcoming", instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpcoming(ctx, request, sc)
		}))

	searchTool := mcp.NewTool("calendar_search",
		mcp.WithDescription("Search events on the primary calendar by text query"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query"),
		),
		mcp.WithNumber("days",
			mcp.Description("Number of days to search ahead (default: 30)"),
		),
	)

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_search", instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearch(ctx, request, sc)
		}))

	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_get_event", instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvent(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a new calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format, e.g., '2026-01-15T14:00:00Z')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format, e.g., '2026-01-15T15:00:00Z')"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_create_event", instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	updateEventTool := mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update an existing calendar event; omitted fields are left unchanged"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC3339 format)"),
		),
	)

	s.AddTool(updateEventTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_update_event", instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateEvent(ctx, request, sc)
		}))

	deleteEventTool := mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
	)

	s.AddTool(deleteEventTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_delete_event", instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	quickAddTool := mcp.NewTool("calendar_quick_add",
		mcp.WithDescription("Create an event from natural language text (e.g., 'Lunch with Anna tomorrow at noon')"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Natural language event description"),
		),
	)

	s.AddTool(quickAddTool, common.InstrumentedToolHandlerWithOperation(
		"calendar_quick_add", instrumentation.OperationQuickAdd, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleQuickAdd(ctx, request, sc)
		}))

	return nil
}

func handleToday(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	return dispatchTool(ctx, sc, account, "calendar.today", nil)
}

func handleUpcoming(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	params := map[string]any{}
	if days, ok := args["days"].(float64); ok {
		params["days"] = days
	}
	if limit, ok := args["limit"].(float64); ok {
		params["limit"] = limit
	}

	return dispatchTool(ctx, sc, account, "calendar.upcoming", params)
}

func handleSearch(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	params := map[string]any{"query": query}
	if days, ok := args["days"].(float64); ok {
		params["days"] = days
	}

	return dispatchTool(ctx, sc, account, "calendar.search", params)
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	return dispatchTool(ctx, sc, account, "calendar.get", map[string]any{
		"event_id": eventID,
	})
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	summary, ok := args["summary"].(string)
	if !ok || summary == "" {
		return mcp.NewToolResultError("summary is required"), nil
	}
	start, ok := args["start"].(string)
	if !ok || start == "" {
		return mcp.NewToolResultError("start is required"), nil
	}
	end, ok := args["end"].(string)
	if !ok || end == "" {
		return mcp.NewToolResultError("end is required"), nil
	}

	params := map[string]any{
		"summary": summary,
		"start":   start,
		"end":     end,
	}
	if desc, ok := args["description"].(string); ok && desc != "" {
		params["description"] = desc
	}
	if loc, ok := args["location"].(string); ok && loc != "" {
		params["location"] = loc
	}
	if attendees := splitAttendees(args["attendees"]); len(attendees) > 0 {
		params["attendees"] = attendees
	}

	return dispatchTool(ctx, sc, account, "calendar.create", params)
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	params := map[string]any{"event_id": eventID}
	for _, key := range []string{"summary", "description", "location", "start", "end"} {
		if v, ok := args[key].(string); ok && v != "" {
			params[key] = v
		}
	}

	return dispatchTool(ctx, sc, account, "calendar.update", params)
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	return dispatchTool(ctx, sc, account, "calendar.delete", map[string]any{
		"event_id": eventID,
	})
}

func handleQuickAdd(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	return dispatchTool(ctx, sc, account, "calendar.quick", map[string]any{
		"text": text,
	})
}

// splitAttendees converts a comma-separated attendee string to the list
// form the dispatcher expects.
func splitAttendees(raw any) []any {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}

	var attendees []any
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			attendees = append(attendees, trimmed)
		}
	}
	return attendees
}
