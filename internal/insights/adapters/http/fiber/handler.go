package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"formsight/internal/insights/core/domain"
	"formsight/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetInsightsUseCase interface {
	Execute(ctx context.Context, in usecase.GetInsightsInput) (*domain.Report, error)
}

type InsightsHandler struct {
	uc GetInsightsUseCase
}

func NewInsightsHandler(uc GetInsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// GetInsights godoc
// @Summary Field abandonment report
// @Description Computes per-field abandonment metrics and recommendations over a trailing window
// @Tags Insights
// @Produce json
// @Param project_id query string true "Project (tenant) id"
// @Param window_days query int false "Trailing window in days (default 7)"
// @Success 200 {object} InsightsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /insights [get]
func (h *InsightsHandler) GetInsights(c *fiber.Ctx) error {
	projectID := c.Query("project_id", "")
	if projectID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "project_id is required",
		})
	}

	windowDays := 0
	if raw := c.Query("window_days", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'window_days' parameter",
			})
		}
		windowDays = n
	}

	report, err := h.uc.Execute(c.UserContext(), usecase.GetInsightsInput{
		ProjectID:  projectID,
		WindowDays: windowDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingProject),
			errors.Is(err, usecase.ErrInvalidWindow):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			// A store failure must surface; a silently zeroed report would
			// read as "no problems" to an operator.
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(report))
}

func toResponse(r *domain.Report) InsightsResponse {
	resp := InsightsResponse{
		ProjectID:  r.ProjectID,
		WindowDays: r.WindowDays,
		Fields:     make([]FieldMetricResponse, 0, len(r.Fields)),
		Tips:       r.Tips,
		Stats: StatsResponse{
			TotalEvents:    r.Stats.TotalEvents,
			UniqueSessions: r.Stats.UniqueSessions,
			Submits:        r.Stats.Submits,
			Abandons:       r.Stats.Abandons,
		},
	}

	for _, m := range r.Fields {
		resp.Fields = append(resp.Fields, toFieldMetric(m))
	}
	if r.KillerField != nil {
		killer := toFieldMetric(*r.KillerField)
		resp.KillerField = &killer
	}

	return resp
}

func toFieldMetric(m domain.FieldMetric) FieldMetricResponse {
	return FieldMetricResponse{
		FieldName:       m.FieldName,
		Visits:          m.Visits,
		Abandons:        m.Abandons,
		AbandonmentRate: m.AbandonmentRate,
		AvgDurationMs:   m.AvgDurationMs,
		HesitationScore: m.HesitationScore,
	}
}
