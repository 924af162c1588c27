package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type OrderController struct {
	Svc      *services.OrderService
	Messages resp.Messages
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{
		Svc:      s,
		Messages: resp.DefaultMessages.Override("list", "{list_scope}"),
	}
}

var orderCtx = resp.MsgContext{Resource: "Order"}

// listScope names what the requester is actually seeing.
func listScope(user *entity.User, role entity.Role) string {
	switch role {
	case entity.RoleManager:
		return "Orders"
	case entity.RoleDeliveryCrew:
		return fmt.Sprintf("Orders assigned to delivery crew '%s'.", user.Username)
	default:
		return fmt.Sprintf("Orders for user '%s'.", user.Username)
	}
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	user := utils.CurrentUser(c)
	role := utils.PrimaryRole(c)
	page := resp.ParsePage(c)

	out, count, err := h.Svc.List(user, role, services.OrderListIn{
		Date:       c.Query("date"),
		DateBefore: c.Query("date_before"),
		DateAfter:  c.Query("date_after"),
		Total:      c.Query("total"),
		MinTotal:   c.Query("min_total"),
		MaxTotal:   c.Query("max_total"),
		Status:     c.Query("status"),
		User:       c.Query("user"),
		Crew:       c.Query("delivery_crew"),
		OrderBy:    c.Query("order_by"),
		Offset:     page.Offset(),
		Limit:      page.Limit(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	detail := h.Messages.Render("list", resp.MsgContext{ListScope: listScope(user, role)})
	resp.Paginated(c, detail, out, count, page)
}

// GET /orders/:id
func (h *OrderController) Retrieve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.Get(utils.CurrentUser(c), utils.PrimaryRole(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("retrieve", orderCtx), out)
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	out, err := h.Svc.CreateFromCart(utils.CurrentUserID(c), utils.PrimaryRole(c))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, h.Messages.Render("create", orderCtx), out)
}

// PUT /orders/:id and PATCH /orders/:id
// Managers may set status and reassign crew; delivery crew may only
// flip status on their own assignments. The route gate keeps everyone
// else out.
func (h *OrderController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	user := utils.CurrentUser(c)
	role := utils.PrimaryRole(c)

	var out *services.OrderOut
	var err error
	switch role {
	case entity.RoleManager:
		var in services.ManagerOrderUpdateIn
		if bindErr := utils.BindStrictJSON(c, &in); bindErr != nil {
			resp.BadRequest(c, bindErr.Error())
			return
		}
		out, err = h.Svc.ManagerUpdate(user, id, &in)
	default:
		var in services.CrewOrderUpdateIn
		if bindErr := utils.BindStrictJSON(c, &in); bindErr != nil {
			resp.BadRequest(c, bindErr.Error())
			return
		}
		out, err = h.Svc.CrewUpdate(user, id, &in)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	ctx := orderCtx
	if c.Request.Method == "PATCH" {
		ctx.Adverb = " partially"
	}
	resp.OK(c, h.Messages.Render("update", ctx), out)
}

// DELETE /orders/:id
func (h *OrderController) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(utils.CurrentUser(c), id); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("destroy", orderCtx), nil)
}
