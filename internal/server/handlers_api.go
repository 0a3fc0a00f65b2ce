package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	apperrors "github.com/Dormanator/trending-sentiments/internal/errors"
	"github.com/Dormanator/trending-sentiments/internal/version"
)

// analyzeResponse wraps the report with a flag the dashboard uses to show
// its "no tweets found, try another term" state.
type analyzeResponse struct {
	NoResults bool           `json:"no_results"`
	Report    *domain.Report `json:"report"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return apperrors.ValidationError("query parameter q is required")
	}

	report, err := s.analyzer.Analyze(c.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			return apperrors.ValidationError("query parameter q is required")
		case errors.Is(err, domain.ErrSearchRateLimited):
			return apperrors.UnavailableError("search API rate limit exhausted, try again later", err).
				WithField("query", query)
		case errors.Is(err, domain.ErrSearchUnauthorized):
			return apperrors.InternalError("search API credentials rejected", err)
		case errors.Is(err, domain.ErrScoreCountMismatch):
			return apperrors.ExternalError("sentiment scorer returned inconsistent results", err).
				WithField("query", query)
		default:
			return apperrors.InternalError("analysis failed", err).WithField("query", query)
		}
	}

	if err := c.JSON(200, analyzeResponse{NoResults: report.Empty(), Report: report}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
