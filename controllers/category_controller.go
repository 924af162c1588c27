package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type CategoryController struct {
	Svc      *services.CategoryService
	Messages resp.Messages
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s, Messages: resp.DefaultMessages}
}

var categoryCtx = resp.MsgContext{Resource: "Category", ResourcePlural: "Categories"}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	page := resp.ParsePage(c)
	out, count, err := h.Svc.List(services.CategoryListIn{
		Search:  c.Query("search"),
		OrderBy: c.Query("order_by"),
		Offset:  page.Offset(),
		Limit:   page.Limit(),
	})
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Paginated(c, h.Messages.Render("list", categoryCtx), out, count, page)
}

// GET /categories/:slug
func (h *CategoryController) Retrieve(c *gin.Context) {
	out, err := h.Svc.Get(c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("retrieve", categoryCtx), out)
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var in services.CategoryWriteIn
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Create(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, h.Messages.Render("create", categoryCtx), out)
}

// PUT /categories/:slug
func (h *CategoryController) Update(c *gin.Context) {
	var in services.CategoryWriteIn
	if err := utils.BindStrictJSON(c, &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Update(c.Param("slug"), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("update", categoryCtx), out)
}

// PATCH /categories/:slug
func (h *CategoryController) PartialUpdate(c *gin.Context) {
	var in services.CategoryPatchIn
	if err := utils.BindStrictJSON(c, &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.PartialUpdate(c.Param("slug"), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	ctx := categoryCtx
	ctx.Adverb = " partially"
	resp.OK(c, h.Messages.Render("update", ctx), out)
}

// DELETE /categories/:slug
func (h *CategoryController) Destroy(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("slug")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("destroy", categoryCtx), nil)
}
