package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/request"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/response"
	"github.com/hallmarkbd/hallmark-api/pkg/pagination"
	"github.com/hallmarkbd/hallmark-api/pkg/upload"
)

// dateLayout is the wire format of the date query and form fields.
const dateLayout = "2006-01-02"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	saver        *upload.Saver
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, saver *upload.Saver) *OrderHandler {
	return &OrderHandler{orderService: orderService, saver: saver}
}

// List handles GET /orders. A date query filters to that day; page or
// per_page switch the reply to the paginated envelope; otherwise the
// full list comes back as a plain array.
func (h *OrderHandler) List(c *gin.Context) {
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid or missing date parameter")
			return
		}

		orders, err := h.orderService.ListOrdersByDay(c.Request.Context(), day)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	if c.Query("page") != "" || c.Query("per_page") != "" {
		var params pagination.PaginationParams
		if err := c.ShouldBindQuery(&params); err != nil {
			response.BadRequest(c, "Invalid pagination parameters")
			return
		}

		result, err := h.orderService.ListOrdersPage(c.Request.Context(), &params)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create handles POST /orders (multipart/form-data with a JSON-encoded
// items field). Totals and vouchers in the form are ignored; the server
// recomputes both.
func (h *OrderHandler) Create(c *gin.Context) {
	var items []request.OrderItemPayload
	if raw := c.PostForm("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			response.BadRequest(c, "Invalid items payload")
			return
		}
	}

	var deliveryDate *time.Time
	dateField := c.PostForm("deliveryDate")
	if dateField == "" {
		dateField = c.PostForm("customerFrom")
	}
	if dateField != "" {
		d, err := time.ParseInLocation(dateLayout, dateField, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid delivery date")
			return
		}
		deliveryDate = &d
	}

	var imagePath *string
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saver.Save(file)
		if err != nil {
			response.Error(c, err)
			return
		}
		imagePath = &path
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		Name:         c.PostForm("name"),
		CustomerID:   c.PostForm("customerID"),
		Company:      c.PostForm("company"),
		Contact:      c.PostForm("contact"),
		Address:      c.PostForm("address"),
		Type:         enum.ServiceType(c.PostForm("type")),
		DeliveryDate: deliveryDate,
		Items:        request.ToInput(items),
		ImagePath:    imagePath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:id, returning the removed order so the
// client can show an undo-style confirmation.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
		"order":   order,
	})
}
