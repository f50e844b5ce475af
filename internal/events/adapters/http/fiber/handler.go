package fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"formsight/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const persistTimeout = 10 * time.Second

type IngestEventsUseCase interface {
	Execute(ctx context.Context, in usecase.IngestEventsInput) (usecase.IngestEventsResult, error)
}

type EventHandler struct {
	ingestUC IngestEventsUseCase
	log      *zap.Logger

	// dispatch runs the persistence step after the response is written.
	// Swapped for a synchronous call in tests.
	dispatch func(fn func())
}

func NewEventHandler(ingestUC IngestEventsUseCase, log *zap.Logger) *EventHandler {
	return &EventHandler{
		ingestUC: ingestUC,
		log:      log,
		dispatch: func(fn func()) { go fn() },
	}
}

// Collect godoc
// @Summary Ingest a telemetry batch
// @Description Accepts a batch of form-interaction events (or a legacy single event) and persists them asynchronously
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CollectRequest true "Telemetry batch"
// @Success 204 "Accepted"
// @Router /collect [post]
func (h *EventHandler) Collect(c *fiber.Ctx) error {
	req, ok := h.parse(c)
	if !ok {
		// Success-like even on garbage: an error status would make some
		// browsers re-send the beacon and duplicate events.
		return c.SendStatus(http.StatusNoContent)
	}

	req = req.normalized()

	input := usecase.IngestEventsInput{
		ProjectID: req.ProjectID,
		SessionID: req.SessionID,
	}
	for _, e := range req.Events {
		input.Events = append(input.Events, usecase.RecordInput{
			Type:       e.Type,
			FieldName:  e.FieldName,
			DurationMs: e.Duration,
			OccurredAt: e.OccurredAt,
		})
	}

	// The response must not wait on the storage write: the sender is often a
	// page in the middle of unloading. Failures past this point are logged,
	// never surfaced.
	h.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		res, err := h.ingestUC.Execute(ctx, input)
		if err != nil {
			h.log.Warn("event batch not persisted",
				zap.String("project_id", input.ProjectID),
				zap.Error(err))
			return
		}
		if res.Dropped > 0 {
			h.log.Info("dropped malformed records",
				zap.String("project_id", input.ProjectID),
				zap.Int("dropped", res.Dropped),
				zap.Int("accepted", res.Accepted))
		}
	})

	return c.SendStatus(http.StatusNoContent)
}

// parse tolerates the encodings the capture side actually produces:
// application/json from fetch, text/plain (or nothing) from beacons, and
// form-encoded bodies from the legacy single-event embed.
func (h *EventHandler) parse(c *fiber.Ctx) (CollectRequest, bool) {
	var req CollectRequest

	contentType := string(c.Request().Header.ContentType())
	if strings.Contains(contentType, "application/x-www-form-urlencoded") ||
		strings.Contains(contentType, "multipart/form-data") {
		if err := c.BodyParser(&req); err != nil {
			h.log.Debug("unparseable form body", zap.Error(err))
			return req, false
		}
		return req, true
	}

	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.log.Debug("unparseable json body", zap.Error(err))
		return req, false
	}
	return req, true
}
