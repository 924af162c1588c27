package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type MenuController struct {
	Svc      *services.MenuService
	Messages resp.Messages
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s, Messages: resp.DefaultMessages}
}

var menuCtx = resp.MsgContext{Resource: "Menu item"}

// GET /items
func (h *MenuController) List(c *gin.Context) {
	page := resp.ParsePage(c)
	in := services.MenuItemListIn{
		Search:  c.Query("search"),
		OrderBy: c.Query("order_by"),
		Offset:  page.Offset(),
		Limit:   page.Limit(),
	}
	if raw := c.Query("price__lte"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			resp.ValidationError(c, map[string][]string{"price__lte": {"A valid number is required."}})
			return
		}
		in.PriceLTE = &v
	}
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			resp.ValidationError(c, map[string][]string{"featured": {"Must be a valid boolean."}})
			return
		}
		in.Featured = &v
	}
	if raw := c.Query("category"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			resp.ValidationError(c, map[string][]string{"category": {"A valid integer is required."}})
			return
		}
		id := uint(v)
		in.CategoryID = &id
	}

	out, count, err := h.Svc.List(in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Paginated(c, h.Messages.Render("list", menuCtx), out, count, page)
}

// GET /items/:id
func (h *MenuController) Retrieve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("retrieve", menuCtx), out)
}

// POST /items
func (h *MenuController) Create(c *gin.Context) {
	var in services.MenuItemWriteIn
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Create(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, h.Messages.Render("create", menuCtx), out)
}

// PUT /items/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.MenuItemWriteIn
	if err := utils.BindStrictJSON(c, &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Update(id, &in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("update", menuCtx), out)
}

// PATCH /items/:id
func (h *MenuController) PartialUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.MenuItemPatchIn
	if err := utils.BindStrictJSON(c, &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.PartialUpdate(id, &in)
	if err != nil {
		handleError(c, err)
		return
	}
	ctx := menuCtx
	ctx.Adverb = " partially"
	resp.OK(c, h.Messages.Render("update", ctx), out)
}

// DELETE /items/:id
func (h *MenuController) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("destroy", menuCtx), nil)
}
