package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
)

// GroupController serves one group roster; the manager and delivery
// crew endpoints are two instances with different wording.
type GroupController struct {
	Svc      *services.GroupService
	Messages resp.Messages
	ctx      resp.MsgContext
}

func NewGroupController(svc *services.GroupService, resource, resourcePlural string) *GroupController {
	group := svc.GroupName
	return &GroupController{
		Svc: svc,
		Messages: resp.DefaultMessages.
			Override("create", "User '{username}' successfully added to the "+group+" group.").
			Override("destroy", "User '{username}' successfully removed from the "+group+" group."),
		ctx: resp.MsgContext{Resource: resource, ResourcePlural: resourcePlural},
	}
}

// GET /groups/<group>/users
func (h *GroupController) List(c *gin.Context) {
	page := resp.ParsePage(c)
	out, count, err := h.Svc.Members(page.Offset(), page.Limit())
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Paginated(c, h.Messages.Render("list", h.ctx), out, count, page)
}

// GET /groups/<group>/users/:id
func (h *GroupController) Retrieve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.Member(id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("retrieve", h.ctx), out)
}

// POST /groups/<group>/users
func (h *GroupController) Add(c *gin.Context) {
	var in services.GroupAddIn
	if !bindJSON(c, &in) {
		return
	}
	username, err := h.Svc.Add(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	ctx := h.ctx
	ctx.Username = username
	resp.Created(c, h.Messages.Render("create", ctx), nil)
}

// DELETE /groups/<group>/users/:id
func (h *GroupController) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	username, err := h.Svc.Remove(id)
	if err != nil {
		handleError(c, err)
		return
	}
	ctx := h.ctx
	ctx.Username = username
	resp.OK(c, h.Messages.Render("destroy", ctx), nil)
}

type UserController struct {
	Svc      *services.UserService
	Messages resp.Messages
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc, Messages: resp.DefaultMessages}
}

// GET /users/customers
func (h *UserController) Customers(c *gin.Context) {
	page := resp.ParsePage(c)
	out, count, err := h.Svc.Customers(page.Offset(), page.Limit())
	if err != nil {
		handleError(c, err)
		return
	}
	detail := h.Messages.Render("list", resp.MsgContext{Resource: "Customer"})
	resp.Paginated(c, detail, out, count, page)
}
