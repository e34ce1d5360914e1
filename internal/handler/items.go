package handler

import (
	"net/http"

	"github.com/Tiny-Clowns/FridgeNaut/internal/apierror"
	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/infra"
	"github.com/Tiny-Clowns/FridgeNaut/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemsHandler struct {
	svc    service.ItemService
	alerts service.AlertService
}

func NewItemsHandler(svc service.ItemService, alerts service.AlertService) *ItemsHandler {
	return &ItemsHandler{svc: svc, alerts: alerts}
}

func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ItemsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Since returns items with updated_at >= the path timestamp.
func (h *ItemsHandler) Since(c *gin.Context) {
	resp, err := h.svc.ListSince(c.Request.Context(), c.Param("timestamp"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alerts classifies the current snapshot: ?days= widens the expiring-soon
// horizon, ?threshold= overrides every item's low-stock threshold.
func (h *ItemsHandler) Alerts(c *gin.Context) {
	var q dto.AlertsQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.alerts.Evaluate(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ShoppingListPDF streams a printable shopping list.
func (h *ItemsHandler) ShoppingListPDF(c *gin.Context) {
	toBuy, low, now, err := h.alerts.ShoppingList(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="shopping-list.pdf"`)
	c.Status(http.StatusOK)
	if err := infra.WriteShoppingListPDF(c.Writer, toBuy, low, now); err != nil {
		_ = c.Error(err)
	}
}
