package controllers

import (
	"strconv"

	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/repository"
	"github.com/cooper235/Canteen-project-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CanteenController struct {
	Canteens *repository.CanteenRepository
	Menu     *repository.MenuRepository
}

func NewCanteenController(canteens *repository.CanteenRepository, menu *repository.MenuRepository) *CanteenController {
	return &CanteenController{Canteens: canteens, Menu: menu}
}

// GET /canteens (public)
func (ctl *CanteenController) List(c *gin.Context) {
	canteens, err := ctl.Canteens.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": canteens})
}

// GET /canteens/:id (public) — includes the materialized rating aggregate.
func (ctl *CanteenController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	canteen, err := ctl.Canteens.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "canteen not found")
		return
	}
	resp.OK(c, canteen)
}

// GET /canteens/:id/menu (public)
func (ctl *CanteenController) MenuList(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := ctl.Menu.ListForCanteen(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type UpdateMenuItemReq struct {
	Name      *string `json:"name"`
	Detail    *string `json:"detail"`
	Price     *int64  `json:"price" binding:"omitempty,min=0"`
	Available *bool   `json:"available"`
}

// PATCH /partner/canteen/menu/:id — live item edits. Snapshotted prices on
// historical orders are untouched by design.
func (ctl *CanteenController) UpdateMenuItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Menu.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	if role != "admin" {
		ok, err := ctl.Canteens.IsOwnedBy(item.CanteenID, uid)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !ok {
			resp.Forbidden(c, "forbidden")
			return
		}
	}

	var req UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Detail != nil {
		fields["detail"] = *req.Detail
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Menu.UpdateItem(item.ID, fields); err != nil {
		resp.ServerError(c, err)
		return
	}

	updated, err := ctl.Menu.FindByID(item.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}
