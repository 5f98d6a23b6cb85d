package instrumentation

import (
	"bytes"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != "todoist-mcp" {
		t.Errorf("ServiceName = %q, want %q", config.ServiceName, "todoist-mcp")
	}
	if !config.Enabled {
		t.Error("expected instrumentation to be enabled by default")
	}
	if config.MetricsExporter != ExporterPrometheus {
		t.Errorf("MetricsExporter = %q, want %q", config.MetricsExporter, ExporterPrometheus)
	}
	if config.TracingExporter != ExporterNone {
		t.Errorf("TracingExporter = %q, want %q", config.TracingExporter, ExporterNone)
	}
	if config.TraceSamplingRate != 0.1 {
		t.Errorf("TraceSamplingRate = %f, want 0.1", config.TraceSamplingRate)
	}
	if !config.AuditLogging.Enabled {
		t.Error("expected audit logging to be enabled by default")
	}
	if config.AuditLogging.IncludeArguments {
		t.Error("expected argument names to be excluded by default")
	}
}

func TestDefaultConfig_IgnoresEnvironment(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "from-env")

	if got := DefaultConfig().ServiceName; got != "todoist-mcp" {
		t.Errorf("ServiceName = %q, want built-in default", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "custom")
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("TRACING_EXPORTER", "otlp")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.5")
	t.Setenv("AUDIT_LOGGING_INCLUDE_ARGUMENTS", "true")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.ServiceName != "custom" {
		t.Errorf("ServiceName = %q, want %q", config.ServiceName, "custom")
	}
	if config.Enabled {
		t.Error("expected instrumentation to be disabled")
	}
	if config.TracingExporter != ExporterOTLP {
		t.Errorf("TracingExporter = %q, want %q", config.TracingExporter, ExporterOTLP)
	}
	if config.OTLPEndpoint != "localhost:4318" {
		t.Errorf("OTLPEndpoint = %q", config.OTLPEndpoint)
	}
	if config.TraceSamplingRate != 0.5 {
		t.Errorf("TraceSamplingRate = %f, want 0.5", config.TraceSamplingRate)
	}
	if !config.AuditLogging.IncludeArguments {
		t.Error("expected argument names to be included")
	}
}

func TestConfigFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "not-a-float")

	if _, err := ConfigFromEnv(); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "defaults",
			config: DefaultConfig(),
		},
		{
			name:    "sampling rate too high",
			config:  Config{TraceSamplingRate: 1.5},
			wantErr: true,
		},
		{
			name:    "negative sampling rate",
			config:  Config{TraceSamplingRate: -0.1},
			wantErr: true,
		},
		{
			name:    "unknown metrics exporter",
			config:  Config{MetricsExporter: "statsd"},
			wantErr: true,
		},
		{
			name:    "unknown tracing exporter",
			config:  Config{TracingExporter: "jaeger"},
			wantErr: true,
		},
		{
			name:    "otlp tracing without endpoint",
			config:  Config{TracingExporter: ExporterOTLP},
			wantErr: true,
		},
		{
			name:    "otlp metrics without endpoint",
			config:  Config{MetricsExporter: ExporterOTLP},
			wantErr: true,
		},
		{
			name:   "otlp with endpoint",
			config: Config{MetricsExporter: ExporterOTLP, TracingExporter: ExporterOTLP, OTLPEndpoint: "localhost:4318"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ConsoleWriter(t *testing.T) {
	var config Config
	if config.consoleWriter() == nil {
		t.Error("expected a default console writer")
	}

	var buf bytes.Buffer
	config.ConsoleWriter = &buf
	if config.consoleWriter() != &buf {
		t.Error("expected the configured console writer")
	}
}
