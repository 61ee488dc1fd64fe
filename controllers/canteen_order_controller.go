package controllers

import (
	"strconv"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/services"
	"github.com/cooper235/Canteen-project-sub000/utils"

	"github.com/gin-gonic/gin"
)

// CanteenOrderController is the vendor-dashboard order surface.
type CanteenOrderController struct {
	Service *services.OrderService
}

func NewCanteenOrderController(service *services.OrderService) *CanteenOrderController {
	return &CanteenOrderController{Service: service}
}

// GET /partner/canteen/orders?canteenId=&status=&page=&limit=
func (ctl *CanteenOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	canteenID, _ := strconv.Atoi(c.Query("canteenId"))
	if canteenID <= 0 {
		resp.BadRequest(c, "canteenId is required")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := entity.OrderStatus(c.Query("status"))

	out, err := ctl.Service.ListForCanteen(uid, role, uint(canteenID), status, page, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/canteen/orders/:id
func (ctl *CanteenOrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.DetailForCanteen(uid, role, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /partner/canteen/orders/:id/status
// No body: the server computes the single legal next status itself.
func (ctl *CanteenOrderController) Advance(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.Advance(uid, role, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

type SetPaymentReq struct {
	Status entity.PaymentStatus `json:"status" binding:"required,oneof=unpaid paid refunded"`
}

// PATCH /partner/canteen/orders/:id/payment
func (ctl *CanteenOrderController) SetPayment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.SetPaymentStatus(uid, role, uint(id), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}
