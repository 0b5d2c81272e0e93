// Package service implements the calendar.* wire methods as a transport-
// agnostic request/response dispatcher.
//
// Dispatch accepts a method name (calendar.today, calendar.upcoming,
// calendar.search, calendar.create, calendar.get, calendar.update,
// calendar.delete, calendar.quick, calendar.free_slots) and a decoded JSON
// params object, and returns the documented response shape for that method.
// Both the CLI `call` command and the MCP tools invoke the same dispatcher,
// so socket, process and protocol concerns never leak into the handlers.
//
// Calendar data comes from the CalendarAPI collaborator. Upstream failures
// are propagated unchanged; they are never masked as empty results. Invalid
// arguments are rejected before any upstream call, wrapped in
// schedule.ErrInvalidArgument or ErrMissingParam.
package service
