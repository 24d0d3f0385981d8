package sales

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

const instrumentationName = "github.com/jhoicas/Comissoes-api/internal/application/sales"

var tracer = otel.Tracer(instrumentationName)

// saleMetrics instrumentos de negocio de ventas. Sin MeterProvider registrado son no-op.
type saleMetrics struct {
	quotes     metric.Int64Counter
	irregular  metric.Int64Counter
	created    metric.Int64Counter
	commission metric.Float64Counter
}

func newSaleMetrics(log *logger.Logger) *saleMetrics {
	meter := otel.GetMeterProvider().Meter(instrumentationName)
	return &saleMetrics{
		quotes:     int64Counter(meter, log, "sales.quotes", "Ventas calculadas por el motor"),
		irregular:  int64Counter(meter, log, "sales.irregular_notations", "Notaciones de parcelas irregulares aceptadas"),
		created:    int64Counter(meter, log, "sales.created", "Ventas registradas"),
		commission: float64Counter(meter, log, "sales.commission", "Comisión total de las ventas registradas"),
	}
}

func int64Counter(meter metric.Meter, log *logger.Logger, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		log.Warn().Err(err).Str("metric", name).Msg("no se pudo registrar la métrica")
		c, _ = noop.Meter{}.Int64Counter(name)
	}
	return c
}

func float64Counter(meter metric.Meter, log *logger.Logger, name, desc string) metric.Float64Counter {
	c, err := meter.Float64Counter(name, metric.WithDescription(desc), metric.WithUnit("{BRL}"))
	if err != nil {
		log.Warn().Err(err).Str("metric", name).Msg("no se pudo registrar la métrica")
		c, _ = noop.Meter{}.Float64Counter(name)
	}
	return c
}

func (m *saleMetrics) quoted(ctx context.Context, mode string, irregular bool) {
	attrs := metric.WithAttributes(attribute.String("mode", mode))
	m.quotes.Add(ctx, 1, attrs)
	if irregular {
		m.irregular.Add(ctx, 1, attrs)
	}
}

func (m *saleMetrics) saleCreated(ctx context.Context, supplierID string, commission float64) {
	attrs := metric.WithAttributes(attribute.String("supplier_id", supplierID))
	m.created.Add(ctx, 1, attrs)
	m.commission.Add(ctx, commission, attrs)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan marca el span con el error (si lo hay) y lo cierra.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
