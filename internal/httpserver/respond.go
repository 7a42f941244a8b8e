package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storelab/commerce-api/internal/events"
	"github.com/storelab/commerce-api/internal/repo"
	"github.com/storelab/commerce-api/internal/service"
	"github.com/storelab/commerce-api/internal/transport"
)

// failFromError maps service/repo errors to HTTP statuses: validation and
// business-rule violations are 400 with the human-readable message, missing
// references are 404, anything else is a generic 500 with the original error
// logged server-side only.
func failFromError(c echo.Context, l *slog.Logger, op string, err error) error {
	var stockErr *repo.InsufficientStockError

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, repo.ErrEmptyCart),
		errors.As(err, &stockErr):
		l.Warn(op+"_error", "status", 400, "error", err)
		return transport.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op+"_error", "status", 404, "error", err)
		return transport.Fail(c, http.StatusNotFound, err.Error())
	default:
		l.Error(op+"_error", "status", 500, "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// publish fires a domain event without affecting the request outcome.
func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
