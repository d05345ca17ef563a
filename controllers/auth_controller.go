package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lareserve-backend/pkg/resp"
	"lareserve-backend/services"
	"lareserve-backend/utils"
	"lareserve-backend/ws"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
	Hub  *ws.SessionHub
}

func NewAuthController(auth *services.AuthService, hub *ws.SessionHub) *AuthController {
	return &AuthController{Auth: auth, Hub: hub}
}

// POST /admin/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	a.Hub.Publish("signed_in", admin.Email)
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": admin.ID, "email": admin.Email, "role": admin.Role,
		},
	})
}

// POST /admin/logout succeeds whether or not the session still existed.
func (a *AuthController) Logout(c *gin.Context) {
	a.Auth.Logout(utils.CurrentTokenID(c))
	a.Hub.Publish("signed_out", "")
	resp.OK(c, gin.H{"message": "signed out"})
}

// GET /admin/session
func (a *AuthController) Session(c *gin.Context) {
	session, err := a.Auth.CurrentSession(utils.CurrentTokenID(c))
	if err != nil {
		resp.Unauthorized(c, "session expired")
		return
	}
	resp.OK(c, gin.H{
		"user": gin.H{
			"id":    session.AdminUser.ID,
			"email": session.AdminUser.Email,
			"role":  session.AdminUser.Role,
		},
		"expires_at": session.ExpiresAt,
	})
}
