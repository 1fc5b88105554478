package mocklogger

import (
	"context"
	"log/slog"
	"sync"
)

// MockHandler is a slog.Handler that keeps every record it sees so tests can
// assert on what was logged.
type MockHandler struct {
	mu       sync.Mutex
	messages []string
	levels   []slog.Level
}

func (h *MockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *MockHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	h.levels = append(h.levels, r.Level)
	return nil
}

func (h *MockHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *MockHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Messages returns a copy of the logged messages in order.
func (h *MockHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}

func (h *MockHandler) Levels() []slog.Level {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]slog.Level(nil), h.levels...)
}

func NewMockLogger() *slog.Logger {
	logger, _ := NewMockLoggerWithHandler()
	return logger
}

func NewMockLoggerWithHandler() (*slog.Logger, *MockHandler) {
	handler := &MockHandler{}
	return slog.New(handler), handler
}
