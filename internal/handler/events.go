package handler

import (
	"net/http"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/apierror"
	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/service"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	ledger  service.LedgerService
	reports service.ReportService
}

func NewEventsHandler(ledger service.LedgerService, reports service.ReportService) *EventsHandler {
	return &EventsHandler{ledger: ledger, reports: reports}
}

// Record appends one event to the ledger and applies it to the item.
func (h *EventsHandler) Record(c *gin.Context) {
	var req dto.RecordEventRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ledger.Record(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EventsHandler) List(c *gin.Context) {
	var filter dto.EventFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.ledger.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary aggregates cost and usage over the requested window. An unparsable
// ?start= is treated as absent, falling back to the derived window — long-time
// client behavior that is kept as-is.
func (h *EventsHandler) Summary(c *gin.Context) {
	var q dto.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	var explicitStart *time.Time
	if q.Start != "" {
		if ts, err := service.ParseTimestamp(q.Start); err == nil {
			explicitStart = &ts
		}
	}

	resp, err := h.reports.Summarize(c.Request.Context(), q.Range, explicitStart)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
