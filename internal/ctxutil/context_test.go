package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestSessionIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if sessionID := GetSessionID(context.Background()); sessionID != "" {
			t.Errorf("Expected empty string, got %s", sessionID)
		}
	})

	t.Run("with session ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithSessionID(context.Background(), "sess-42")
		if got := GetSessionID(ctx); got != "sess-42" {
			t.Errorf("Expected sessionID sess-42, got %s", got)
		}
	})

	t.Run("empty session ID is absent", func(t *testing.T) {
		t.Parallel()
		ctx := WithSessionID(context.Background(), "")
		if got := GetSessionID(ctx); got != "" {
			t.Errorf("Expected empty string, got %s", got)
		}
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		requestID, ok := GetRequestID(context.Background())
		if ok || requestID != "" {
			t.Errorf("Expected (\"\", false), got (%q, %v)", requestID, ok)
		}
	})

	t.Run("with request ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithRequestID(context.Background(), "req-abc")
		requestID, ok := GetRequestID(ctx)
		if !ok || requestID != "req-abc" {
			t.Errorf("Expected (req-abc, true), got (%q, %v)", requestID, ok)
		}
		if got := MustGetRequestID(ctx); got != "req-abc" {
			t.Errorf("MustGetRequestID() = %q, want req-abc", got)
		}
	})
}

func TestMustGetRequestID_Panic(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustGetRequestID to panic on empty context")
		}
	}()

	MustGetRequestID(context.Background())
}

func TestClientIPContext(t *testing.T) {
	t.Parallel()

	if got := GetClientIP(context.Background()); got != "" {
		t.Errorf("Expected empty string, got %s", got)
	}
	ctx := WithClientIP(context.Background(), "10.0.0.7")
	if got := GetClientIP(ctx); got != "10.0.0.7" {
		t.Errorf("GetClientIP() = %q, want 10.0.0.7", got)
	}
}

func TestPreserveTracing(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	parent = WithSessionID(parent, "sess-1")
	parent = WithRequestID(parent, "req-1")
	parent = WithClientIP(parent, "127.0.0.1")

	detached := PreserveTracing(parent)
	cancel()

	if parent.Err() == nil {
		t.Fatal("parent should be canceled")
	}
	if detached.Err() != nil {
		t.Errorf("detached context should not be canceled, got %v", detached.Err())
	}
	if _, ok := detached.Deadline(); ok {
		t.Error("detached context should have no deadline")
	}
	if got := GetSessionID(detached); got != "sess-1" {
		t.Errorf("session ID = %q, want sess-1", got)
	}
	if got, _ := GetRequestID(detached); got != "req-1" {
		t.Errorf("request ID = %q, want req-1", got)
	}
	if got := GetClientIP(detached); got != "127.0.0.1" {
		t.Errorf("client IP = %q, want 127.0.0.1", got)
	}
}

func TestPreserveTracing_EmptyContext(t *testing.T) {
	t.Parallel()

	detached := PreserveTracing(context.Background())
	if got := GetSessionID(detached); got != "" {
		t.Errorf("session ID = %q, want empty", got)
	}
	if _, ok := GetRequestID(detached); ok {
		t.Error("request ID should be absent")
	}
}
