package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type DemoController struct{ Svc *services.DemoService }

func NewDemoController(s *services.DemoService) *DemoController { return &DemoController{Svc: s} }

// POST /demo/login/:role
func (h *DemoController) Login(c *gin.Context) {
	out, err := h.Svc.Login(c.Param("role"))
	if err != nil {
		handleError(c, err)
		return
	}
	hours := int(h.Svc.Cfg.DemoUserTTL.Hours())
	detail := fmt.Sprintf("Temporary '%s' account created. Expires in %dh.", out.Role, hours)
	resp.Created(c, detail, out)
}

// GET /demo/me
func (h *DemoController) Me(c *gin.Context) {
	resp.OK(c, "Demo session details", h.Svc.Me(utils.CurrentUser(c)))
}

// POST /demo/purge
func (h *DemoController) Purge(c *gin.Context) {
	count, err := h.Svc.Purge(time.Now())
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, fmt.Sprintf("Purged %d expired demo user(s).", count), gin.H{"purged": count})
}
