package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lurra-labs/elevate/internal/core/domain"
)

// Envelope statuses on the wire.
const (
	statusOK            = "OK"
	statusInvalidReq    = "INVALID_REQUEST"
	statusServerError   = "SERVER_ERROR"
	genericServerErrMsg = "Server error, please retry request."
)

type errorEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// writeError is the single place where the error taxonomy becomes an HTTP
// outcome. Client faults keep their message, which is written to be
// actionable; everything else is masked unless debug is on.
func writeError(c *fiber.Ctx, err error, debug bool) error {
	if domain.IsClientFault(err) {
		return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope{
			Status: statusInvalidReq,
			Error:  err.Error(),
		})
	}

	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		slog.Error("configuration error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorEnvelope{
			Status: statusServerError,
			Error:  err.Error(),
		})
	}

	slog.Error("unexpected error handling elevation query", "error", err)
	msg := genericServerErrMsg
	if debug {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorEnvelope{
		Status: statusServerError,
		Error:  msg,
	})
}

// errorKind labels a failure for metrics.
func errorKind(err error) string {
	var (
		empty       *domain.EmptyLocationsError
		segment     *domain.SegmentFormatError
		outOfRange  *domain.OutOfRangeError
		poly        *domain.PolylineDecodeError
		tooMany     *domain.TooManyLocationsError
		method      *domain.UnsupportedMethodError
		dataset     *domain.DatasetNotFoundError
		input       *domain.InputError
		configError *domain.ConfigError
	)
	switch {
	case errors.As(err, &empty):
		return "empty_locations"
	case errors.As(err, &segment):
		return "segment_format"
	case errors.As(err, &outOfRange):
		return "out_of_range"
	case errors.As(err, &poly):
		return "polyline_decode"
	case errors.As(err, &tooMany):
		return "too_many_locations"
	case errors.As(err, &method):
		return "unsupported_method"
	case errors.As(err, &dataset):
		return "dataset_not_found"
	case errors.As(err, &input):
		return "backend_input"
	case errors.As(err, &configError):
		return "config"
	default:
		return "internal"
	}
}
