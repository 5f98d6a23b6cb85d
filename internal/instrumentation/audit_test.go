package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const (
	testToolCreate = "createTask"
	testToolList   = "listProjects"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolCreate)

	if ti.Tool != testToolCreate {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolCreate)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusSuccess)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolCreate).CompleteWithError(errors.New("403 Forbidden"))

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "403 Forbidden" {
		t.Errorf("Error = %q, want %q", ti.Error, "403 Forbidden")
	}
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_WithArguments(t *testing.T) {
	ti := NewToolInvocation(testToolCreate).WithArguments(map[string]any{
		"priority": 2,
		"content":  "Buy milk",
	})

	if strings.Join(ti.Arguments, ",") != "content,priority" {
		t.Errorf("Arguments = %v, want sorted names", ti.Arguments)
	}
	if ti.ResourceID != "" {
		t.Errorf("ResourceID = %q, want empty for a creation", ti.ResourceID)
	}

	ti = NewToolInvocation("updateTask").WithArguments(map[string]any{"taskId": "42", "content": "x"})
	if ti.ResourceID != "42" {
		t.Errorf("ResourceID = %q, want 42", ti.ResourceID)
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolList).WithOperation(EntityProject, OperationList)
	ti.TraceID = "abc123"
	ti.CompleteSuccess()

	keys := map[string]bool{}
	for _, attr := range ti.LogAttrs() {
		keys[attr.Key] = true
	}
	for _, want := range []string{"tool", "duration", "success", "entity", "operation", "trace_id"} {
		if !keys[want] {
			t.Errorf("LogAttrs missing %q", want)
		}
	}
	if keys["error"] || keys["span_id"] || keys["resource_id"] {
		t.Error("LogAttrs should omit empty optional fields")
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	tests := []struct {
		name        string
		config      AuditLoggingConfig
		success     bool
		wantMessage string
		wantArgs    bool
	}{
		{"success", AuditLoggingConfig{Enabled: true}, true, "tool_executed", false},
		{"failure", AuditLoggingConfig{Enabled: true}, false, "tool_failed", false},
		{"with argument names", AuditLoggingConfig{Enabled: true, IncludeArguments: true}, true, "tool_executed", true},
		{"disabled", AuditLoggingConfig{Enabled: false}, true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewAuditLoggerWithConfig(slog.New(slog.NewTextHandler(&buf, nil)), tt.config)

			ti := NewToolInvocation(testToolCreate).WithArguments(map[string]any{"content": "secret value"})
			ti.Complete(tt.success, nil)
			logger.LogToolInvocation(ti)

			out := buf.String()
			if tt.wantMessage == "" {
				if out != "" {
					t.Errorf("expected no output, got %q", out)
				}
				return
			}
			if !strings.Contains(out, tt.wantMessage) {
				t.Errorf("output %q does not contain %q", out, tt.wantMessage)
			}
			if strings.Contains(out, "secret value") {
				t.Error("argument values must never be logged")
			}
			if got := strings.Contains(out, "arguments="); got != tt.wantArgs {
				t.Errorf("arguments logged = %v, want %v", got, tt.wantArgs)
			}
		})
	}
}

func TestAuditLogger_Nil(t *testing.T) {
	var logger *AuditLogger
	// Should not panic
	logger.LogToolInvocation(NewToolInvocation(testToolList).CompleteSuccess())

	if NewAuditLogger(nil) == nil {
		t.Error("NewAuditLogger(nil) should fall back to the default logger")
	}
}
