package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTeeHandler_NoRemote(t *testing.T) {
	t.Parallel()

	local := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	if h := newTeeHandler(local, nil); h != local {
		t.Errorf("newTeeHandler(local, nil) = %T, want the local handler", h)
	}
}

func TestTeeHandler_Mirrors(t *testing.T) {
	t.Parallel()

	var local, remote bytes.Buffer
	h := newTeeHandler(
		slog.NewJSONHandler(&local, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&remote, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("module", "chatbot").WithGroup("catalog")

	log.Info("reloaded", "persons", 3)
	if !strings.Contains(local.String(), `"catalog":{"persons":3}`) {
		t.Errorf("local sink missing grouped attrs: %s", local.String())
	}
	if !strings.Contains(local.String(), `"module":"chatbot"`) {
		t.Errorf("local sink missing attrs: %s", local.String())
	}
	if remote.Len() != 0 {
		t.Errorf("remote sink should skip info records: %s", remote.String())
	}

	log.Warn("feed failed")
	if !strings.Contains(remote.String(), "feed failed") {
		t.Errorf("remote sink missing warn record: %s", remote.String())
	}
}

func TestTeeHandler_OnlyLocalErrorsSurface(t *testing.T) {
	t.Parallel()

	errLocal := errors.New("stdout closed")
	failing := func(err error) slog.Handler {
		return handlerFunc(func(context.Context, slog.Record) error { return err })
	}
	r := record(slog.LevelInfo, "chat handled")

	h := newTeeHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil), failing(errors.New("betterstack down")))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Errorf("Handle() = %v, want remote error ignored", err)
	}

	h = newTeeHandler(failing(errLocal), slog.NewJSONHandler(&bytes.Buffer{}, nil))
	if err := h.Handle(context.Background(), r); !errors.Is(err, errLocal) {
		t.Errorf("Handle() = %v, want %v", err, errLocal)
	}
}
