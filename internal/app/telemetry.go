package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	serviceNamespace = "planetarium"
	metricsInterval  = 15 * time.Second
)

// InitTelemetry installs the global trace, metric and log providers exporting
// to cfg.OtelCollectorUrl. Without a collector it is a no-op.
func InitTelemetry(cfg Config, logger *slog.Logger) (func(context.Context), error) {
	if cfg.OtelCollectorUrl == "" {
		logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, cfg, res)
	if err != nil {
		return nil, fmt.Errorf("otel trace exporter: %w", err)
	}

	meterProvider, err := newMeterProvider(ctx, cfg, res)
	if err != nil {
		tracerProvider.Shutdown(ctx)
		return nil, fmt.Errorf("otel metric exporter: %w", err)
	}

	loggerProvider, err := newLoggerProvider(ctx, cfg, res)
	if err != nil {
		tracerProvider.Shutdown(ctx)
		meterProvider.Shutdown(ctx)
		return nil, fmt.Errorf("otel log exporter: %w", err)
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	logger.Info("telemetry enabled", "collector", cfg.OtelCollectorUrl, "sampleRatio", cfg.OtelSampleRatio)

	shutdown := func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			loggerProvider.Shutdown(shutdownCtx),
		)
		if err != nil {
			logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return shutdown, nil
}

// newResource describes this API instance: the service identity plus the
// storage and messaging backends it was started with.
func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	instance, err := os.Hostname()
	if err != nil {
		instance = "unknown"
	}

	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace(serviceNamespace),
			semconv.ServiceVersion(version),
			semconv.ServiceInstanceID(instance),
			semconv.DeploymentEnvironment(cfg.Env),
			attribute.String("planetarium.storage.driver", cfg.Storage.Driver),
			attribute.Bool("planetarium.events.enabled", cfg.AMQP.URL != ""),
		),
	)
}

func newTracerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithSampler(newSampler(cfg.OtelSampleRatio)),
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	), nil
}

// newSampler keeps the caller's sampling decision and samples new traces by ratio.
func newSampler(ratio float64) trace.Sampler {
	if ratio >= 1 {
		return trace.ParentBased(trace.AlwaysSample())
	}

	return trace.ParentBased(trace.TraceIDRatioBased(ratio))
}

func newMeterProvider(ctx context.Context, cfg Config, res *resource.Resource) (*metric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, err
	}

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(metricsInterval))),
	), nil
}

func newLoggerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*log.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(cfg.OtelCollectorUrl),
	)
	if err != nil {
		return nil, err
	}

	return log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(log.NewBatchProcessor(exporter)),
	), nil
}

// bookingMetrics counts reservation outcomes.
type bookingMetrics struct {
	reservations otelmetric.Int64Counter
	tickets      otelmetric.Int64Counter
	rejections   otelmetric.Int64Counter
}

func newBookingMetrics(meter otelmetric.Meter) (*bookingMetrics, error) {
	reservations, err := meter.Int64Counter("planetarium.reservations.created",
		otelmetric.WithDescription("Committed reservations"),
		otelmetric.WithUnit("{reservation}"))
	if err != nil {
		return nil, err
	}

	tickets, err := meter.Int64Counter("planetarium.tickets.sold",
		otelmetric.WithDescription("Tickets in committed reservations"),
		otelmetric.WithUnit("{ticket}"))
	if err != nil {
		return nil, err
	}

	rejections, err := meter.Int64Counter("planetarium.reservations.rejected",
		otelmetric.WithDescription("Reservation attempts refused, by reason"),
		otelmetric.WithUnit("{reservation}"))
	if err != nil {
		return nil, err
	}

	return &bookingMetrics{reservations: reservations, tickets: tickets, rejections: rejections}, nil
}

func (m *bookingMetrics) recordCreated(ctx context.Context, tickets int) {
	m.reservations.Add(ctx, 1)
	m.tickets.Add(ctx, int64(tickets))
}

func (m *bookingMetrics) recordRejected(ctx context.Context, reason string) {
	m.rejections.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("reason", reason)))
}

// MultiHandler is a slog.Handler that dispatches log records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler that forwards records to the provided handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: handlers,
	}
}

// Enabled reports whether any of the underlying handlers are enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to all underlying handlers.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs creates a new MultiHandler with the provided attributes added to each sub-handler.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

// WithGroup creates a new MultiHandler with the provided group name added to each sub-handler.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}
