package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/request"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/response"
)

// ItemHandler handles item catalog HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ListByType handles GET /items/:type
func (h *ItemHandler) ListByType(c *gin.Context) {
	items, err := h.itemService.ListByType(c.Request.Context(), enum.ServiceType(c.Param("type")))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), enum.ServiceType(req.Type), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}
