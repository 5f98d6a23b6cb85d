package instrumentation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanAttributeBuilder(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithOperation(EntityTask, OperationUpdate).
		WithResourceID("123").
		Build()

	want := map[attribute.Key]string{
		SpanAttrEntity:     EntityTask,
		SpanAttrOperation:  OperationUpdate,
		SpanAttrResourceID: "123",
	}
	if len(attrs) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(attrs), len(want))
	}
	for _, attr := range attrs {
		if got := attr.Value.Emit(); got != want[attr.Key] {
			t.Errorf("%s = %q, want %q", attr.Key, got, want[attr.Key])
		}
	}
}

func TestSpanAttributeBuilder_SkipsEmpty(t *testing.T) {
	attrs := NewSpanAttributeBuilder().WithOperation("", "").WithResourceID("").Build()
	if len(attrs) != 0 {
		t.Errorf("expected no attributes, got %v", attrs)
	}
}

func TestResourceID(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"nil arguments", nil, ""},
		{"listing", map[string]any{"filter": "today"}, ""},
		{"task", map[string]any{"taskId": "42", "projectId": "7"}, "42"},
		{"comment on project", map[string]any{"commentId": "c1", "projectId": "7"}, "c1"},
		{"project", map[string]any{"projectId": "7"}, "7"},
		{"shared label", map[string]any{"name": "work", "newName": "office"}, "work"},
		{"empty id skipped", map[string]any{"taskId": "", "projectId": "7"}, "7"},
		{"non string ignored", map[string]any{"taskId": 42}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResourceID(tt.args); got != tt.want {
				t.Errorf("ResourceID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartToolSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := StartToolSpan(context.Background(), "getTask", SpanAttrEntity.String(EntityTask))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("got %d spans, want 1", len(ended))
	}
	if ended[0].Name() != "tool.getTask" {
		t.Errorf("span name = %q, want tool.getTask", ended[0].Name())
	}
	attrs := map[attribute.Key]string{}
	for _, attr := range ended[0].Attributes() {
		attrs[attr.Key] = attr.Value.Emit()
	}
	if attrs[SpanAttrTool] != "getTask" || attrs[SpanAttrEntity] != EntityTask {
		t.Errorf("unexpected attributes %v", attrs)
	}
}

func TestSetSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := tp.Tracer(TracerName).Start(context.Background(), "parent")
	if GetTraceID(ctx) == "" || GetSpanID(ctx) == "" {
		t.Error("expected trace and span ids for a recording span")
	}
	SetSpanError(span, errors.New("boom"))
	SetSpanError(span, nil)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("got %d spans, want 1", len(ended))
	}
	if ended[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want error", ended[0].Status().Code)
	}
}

func TestSetSpanSuccess(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := tp.Tracer(TracerName).Start(context.Background(), "ok")
	SetSpanSuccess(span)
	span.End()

	if got := recorder.Ended()[0].Status().Code; got != codes.Ok {
		t.Errorf("status = %v, want ok", got)
	}
}

func TestGetTraceID_NoSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Errorf("GetTraceID() = %q, want empty", id)
	}
	if id := GetSpanID(context.Background()); id != "" {
		t.Errorf("GetSpanID() = %q, want empty", id)
	}
}
