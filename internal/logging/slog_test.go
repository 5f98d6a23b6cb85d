package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		format  string
		want    string
		wantErr bool
	}{
		{name: "text default", format: "", want: "level=INFO"},
		{name: "text debug", debug: true, format: "text", want: "level=DEBUG"},
		{name: "json", format: "JSON", want: `"level":"INFO"`},
		{name: "unknown", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, tt.debug, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.debug {
				logger.Debug("hello")
			} else {
				logger.Debug("hidden")
				logger.Info("hello")
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
			if strings.Contains(buf.String(), "hidden") {
				t.Error("debug record written at info level")
			}
		})
	}
}

func TestWithTool(t *testing.T) {
	var buf bytes.Buffer
	logger := WithTool(slog.New(slog.NewTextHandler(&buf, nil)), "createTask")
	logger.Info("called")
	if !strings.Contains(buf.String(), "tool=createTask") {
		t.Errorf("output %q does not contain the tool", buf.String())
	}
}

func TestWithOperation(t *testing.T) {
	result := WithOperation(slog.Default(), "add_task")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"operation", Operation("get_task"), KeyOperation, "get_task"},
		{"entity", Entity("task"), KeyEntity, "task"},
		{"tool", Tool("getTask"), KeyTool, "getTask"},
		{"status", Status(StatusSuccess), KeyStatus, "success"},
		{"http status", HTTPStatus(404), KeyHTTPStatus, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.String() != tt.wantVal {
				t.Errorf("value = %q, want %q", tt.attr.Value.String(), tt.wantVal)
			}
		})
	}
}

func TestErr(t *testing.T) {
	attr := Err(errors.New("test error"))
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Empty Group has empty key
	attr = Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"", "<empty>"},
		{"abc123", "[token:6 chars]"},
		{"0123456789abcdef0123456789abcdef01234567", "[token:40 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}
