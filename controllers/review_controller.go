package controllers

import (
	"strconv"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/services"
	"github.com/cooper235/Canteen-project-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

// POST /reviews (protected)
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Create(uid, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, rev)
}

// DELETE /reviews/:id (author or admin)
func (rc *ReviewController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := rc.Service.Delete(uid, role, uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /reviews/:id/helpful
func (rc *ReviewController) Helpful(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Service.MarkHelpful(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /admin/reviews/:id/status
type SetReviewStatusReq struct {
	Status entity.ReviewStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}

func (rc *ReviewController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetReviewStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.SetStatus(uint(id), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, rev)
}

// GET /menu-items/:id/reviews (public)
func (rc *ReviewController) ListForMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	limit, offset := pageParams(c)

	items, stats, err := rc.Service.ListForMenuItem(uint(id), limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":     items,
		"meta":      gin.H{"limit": limit, "offset": offset},
		"aggregate": gin.H{"avgRating": stats.Avg, "total": stats.Count},
	})
}

// GET /canteens/:id/reviews (public)
func (rc *ReviewController) ListForCanteen(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	limit, offset := pageParams(c)

	items, stats, err := rc.Service.ListForCanteen(uint(id), limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":     items,
		"meta":      gin.H{"limit": limit, "offset": offset},
		"aggregate": gin.H{"avgRating": stats.Avg, "total": stats.Count},
	})
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
