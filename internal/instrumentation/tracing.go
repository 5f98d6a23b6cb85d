package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of all todoist-mcp spans.
const TracerName = "github.com/teemow/todoist-mcp"

// Span attribute keys.
const (
	SpanAttrTool       attribute.Key = "mcp.tool"
	SpanAttrEntity     attribute.Key = "todoist.entity"
	SpanAttrOperation  attribute.Key = "todoist.operation"
	SpanAttrResourceID attribute.Key = "todoist.resource_id"
)

// resourceIDArguments are the tool arguments naming the object a call
// targets, in lookup order. Shared labels are addressed by name.
var resourceIDArguments = []string{
	"taskId",
	"commentId",
	"sectionId",
	"labelId",
	"projectId",
	"name",
}

// ResourceID returns the Todoist object a tool call targets, or "" for
// listings and creations without a parent.
func ResourceID(args map[string]any) string {
	for _, key := range resourceIDArguments {
		if id, ok := args[key].(string); ok && id != "" {
			return id
		}
	}
	return ""
}

// SpanAttributeBuilder collects the attributes of a tool span. Empty
// values are skipped.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates an empty builder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{attrs: make([]attribute.KeyValue, 0, 3)}
}

// WithOperation adds the entity and operation of the call.
func (b *SpanAttributeBuilder) WithOperation(entity, operation string) *SpanAttributeBuilder {
	b.add(SpanAttrEntity, entity)
	b.add(SpanAttrOperation, operation)
	return b
}

// WithResourceID adds the targeted Todoist id.
func (b *SpanAttributeBuilder) WithResourceID(id string) *SpanAttributeBuilder {
	b.add(SpanAttrResourceID, id)
	return b
}

func (b *SpanAttributeBuilder) add(key attribute.Key, value string) {
	if value != "" {
		b.attrs = append(b.attrs, key.String(value))
	}
}

// Build returns the collected attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// StartToolSpan starts the server span "tool.<name>" from the global
// tracer provider. The caller ends the span.
func StartToolSpan(ctx context.Context, toolName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{SpanAttrTool.String(toolName)}, attrs...)

	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, "tool."+toolName,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}

// SetSpanError records err on span. A nil error is ignored.
func SetSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace id of the span in ctx, or "".
func GetTraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}

// GetSpanID returns the span id of the span in ctx, or "".
func GetSpanID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.SpanID().String()
	}
	return ""
}
