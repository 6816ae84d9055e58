package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lurra-labs/elevate/internal/core/domain"
	"github.com/lurra-labs/elevate/internal/pkg/metrics"
)

type elevationResponse struct {
	Status  string          `json:"status"`
	Results []domain.Result `json:"results"`
}

// LivenessHandler answers the root liveness probe.
func LivenessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	}
}

// HelpHandler answers /v1/ without a dataset segment. This is a routing
// miss rather than a validation failure, so it gets a 404 with a hint.
func HelpHandler() fiber.Handler {
	msg := "No dataset name provided."
	msg += " Try a url like '/v1/test-dataset?locations=-10,120' to get started,"
	msg += " and see the API documentation for the full query reference."

	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(errorEnvelope{
			Status: statusInvalidReq,
			Error:  msg,
		})
	}
}

// ElevationHandler runs one elevation query. The dataset name comes from
// the path, locations and interpolation from the query string; the
// interpolation default is applied by the orchestrator.
func ElevationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dataset := c.Params("dataset")
		locations := c.Query("locations")
		interpolation := c.Query("interpolation")

		results, err := deps.Elevation.Query(c.Context(), dataset, locations, interpolation)
		if err != nil {
			outcome := "server_error"
			if domain.IsClientFault(err) {
				outcome = "client_error"
				metrics.ParseFailures.WithLabelValues(errorKind(err)).Inc()
			}
			metrics.QueriesTotal.WithLabelValues(dataset, outcome).Inc()
			return writeError(c, err, deps.Debug)
		}

		metrics.QueriesTotal.WithLabelValues(dataset, "ok").Inc()
		metrics.LocationsPerQuery.Observe(float64(len(results)))

		return c.JSON(elevationResponse{Status: statusOK, Results: results})
	}
}
