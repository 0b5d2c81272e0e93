package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fgp-services/calendar/internal/calendar"
	"github.com/fgp-services/calendar/internal/instrumentation"
)

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sc.Context() == nil {
		t.Error("expected non-nil context")
	}
	if sc.IsShutdown() {
		t.Error("expected server context to not be shutdown")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("expected no error on shutdown, got %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("expected server context to be shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected context to be cancelled after shutdown")
	}

	// Shutdown is idempotent
	if err := sc.Shutdown(); err != nil {
		t.Errorf("expected no error on repeated shutdown, got %v", err)
	}
}

func TestServerContext_SetCalendarClient(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	client := &calendar.Client{}
	sc.SetCalendarClient(client)

	if got := sc.CalendarClient(); got != client {
		t.Error("expected cached default client to be returned")
	}

	workClient := &calendar.Client{}
	sc.SetCalendarClientForAccount("work", workClient)

	if got := sc.CalendarClientForAccount("work"); got != workClient {
		t.Error("expected cached work client to be returned")
	}
}

func TestServerContext_MetricsWithoutProvider(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sc.Metrics() != nil {
		t.Error("expected nil metrics without an instrumentation provider")
	}
	if sc.InstrumentationProvider() != nil {
		t.Error("expected nil instrumentation provider")
	}
}

func TestServerContext_SetInstrumentationProvider(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName: "test-service",
		Enabled:     false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	sc.SetInstrumentationProvider(provider)

	if sc.InstrumentationProvider() != provider {
		t.Error("expected provider to be returned")
	}
	if sc.Metrics() == nil {
		t.Error("expected non-nil metrics from disabled provider")
	}
}

func TestServerContext_AuditLogger(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sc.AuditLogger() != nil {
		t.Error("expected nil audit logger by default")
	}

	audit := instrumentation.NewAuditLogger(slog.Default())
	sc.SetAuditLogger(audit)

	if sc.AuditLogger() != audit {
		t.Error("expected audit logger to be returned")
	}
}
