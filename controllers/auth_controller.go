package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
	"github.com/Jead100/restaurant-api/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Register(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, "User registered successfully.", out)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var in services.LoginIn
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.Login(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, "Login successful.", out)
}

// POST /auth/refresh
func (h *AuthController) Refresh(c *gin.Context) {
	var in struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if !bindJSON(c, &in) {
		return
	}
	access, err := h.Svc.Refresh(in.Refresh)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, "Token refreshed successfully.", gin.H{"access": access})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user := utils.CurrentUser(c)
	resp.OK(c, "User details", h.Svc.Me(user))
}
