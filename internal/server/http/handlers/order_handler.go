package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/programmer-tapa/order-service/internal/server/http/dto"
	"github.com/programmer-tapa/order-service/internal/service"
	"github.com/programmer-tapa/order-service/internal/usecase/createorder"
	"github.com/programmer-tapa/order-service/internal/usecase/getorder"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	create *service.Service[createorder.Input, createorder.Output]
	get    *service.Service[getorder.Input, getorder.Output]
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(
	create *service.Service[createorder.Input, createorder.Output],
	get *service.Service[getorder.Input, getorder.Output],
) *OrderHandler {
	return &OrderHandler{create: create, get: get}
}

// Create handles POST /api/v0/orders/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		out := service.ValidationError[createorder.Output]("Request body is not valid JSON")
		c.JSON(HTTPStatus(out.Status), out)
		return
	}

	out := h.create.Run(c.Request.Context(), CurrentIdentity(c), req.ToInput())
	c.JSON(HTTPStatus(out.Status), out)
}

// Get handles GET /api/v0/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	input := getorder.Input{OrderID: c.Param("id")}
	out := h.get.Run(c.Request.Context(), CurrentIdentity(c), input)
	c.JSON(HTTPStatus(out.Status), out)
}
