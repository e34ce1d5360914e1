package handler

import (
	"net/http"

	"github.com/Tiny-Clowns/FridgeNaut/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	recount service.RecountService
}

func NewAdminHandler(recount service.RecountService) *AdminHandler {
	return &AdminHandler{recount: recount}
}

// Recount enqueues an async ledger audit and returns its job id.
func (h *AdminHandler) Recount(c *gin.Context) {
	resp, err := h.recount.Enqueue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// RecountReport returns the current state of a recount job.
func (h *AdminHandler) RecountReport(c *gin.Context) {
	resp, err := h.recount.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
