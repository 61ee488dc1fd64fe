package controllers

import (
	"strconv"

	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/services"
	"github.com/cooper235/Canteen-project-sub000/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the buyer-facing order surface.
type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders
// No idempotency key: a retried request creates a second order. Known gap,
// preserved from the source behavior.
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(uid, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Service.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (order owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Service.DetailForUser(uid, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Service.Cancel(uid, role, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}
