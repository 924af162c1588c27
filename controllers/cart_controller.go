package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type CartController struct {
	Svc      *services.CartService
	Messages resp.Messages
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{
		Svc: s,
		Messages: resp.DefaultMessages.
			Override("list", "Items in the cart for user '{username}'.").
			Override("create", "Item added to cart successfully.").
			Override("destroy", "Item removed from cart successfully."),
	}
}

// GET /cart
func (h *CartController) List(c *gin.Context) {
	user := utils.CurrentUser(c)
	page := resp.ParsePage(c)
	out, count, err := h.Svc.List(user.ID, page.Offset(), page.Limit())
	if err != nil {
		handleError(c, err)
		return
	}
	detail := h.Messages.Render("list", resp.MsgContext{Username: user.Username})
	resp.Paginated(c, detail, out, count, page)
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var in services.CartAddIn
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Add(utils.CurrentUserID(c), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, h.Messages.Render("create", resp.MsgContext{}), out)
}

// PUT /cart/:id and PATCH /cart/:id
// Quantity is the only mutable field, so both verbs share a handler.
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.CartUpdateIn
	if err := utils.BindStrictJSON(c, &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), id, &in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("update", resp.MsgContext{Resource: "Cart item"}), out)
}

// DELETE /cart/:id
func (h *CartController) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(utils.CurrentUserID(c), id); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, h.Messages.Render("destroy", resp.MsgContext{}), nil)
}

// DELETE /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	deleted, err := h.Svc.Clear(utils.CurrentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	if deleted == 0 {
		resp.OK(c, "No items in cart. Nothing to clear.", nil)
		return
	}
	resp.OK(c, "Cart cleared successfully.", nil)
}
