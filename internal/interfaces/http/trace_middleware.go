package http

import (
	"fmt"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader devuelve al cliente el trace id de la petición.
const TraceIDHeader = "X-Trace-Id"

var (
	tracer     = otel.Tracer("github.com/jhoicas/Comissoes-api/internal/interfaces/http")
	propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
)

// TraceMiddleware abre un span de servidor por petición y lo deja en c.UserContext()
// para que los casos de uso cuelguen sus spans. Respeta un traceparent entrante.
func TraceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := propagator.Extract(c.UserContext(), propagation.HeaderCarrier(nethttp.Header(c.GetReqHeaders())))
		ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", c.Method(), c.Path()), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("http.request.method", c.Method()),
			attribute.String("url.path", c.Path()),
		)
		if sc := span.SpanContext(); sc.TraceID().IsValid() {
			c.Set(TraceIDHeader, sc.TraceID().String())
		}
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if route := c.Route(); route != nil && route.Path != "" {
			span.SetName(fmt.Sprintf("%s %s", c.Method(), route.Path))
			span.SetAttributes(attribute.String("http.route", route.Path))
		}
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if err != nil {
			span.RecordError(err)
		}
		if status >= fiber.StatusInternalServerError || err != nil {
			span.SetStatus(codes.Error, nethttp.StatusText(status))
		}
		return err
	}
}
