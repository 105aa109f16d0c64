package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
)

type AuthController struct {
	accounts in.AccountUseCase
}

func NewAuthController(accounts in.AccountUseCase) *AuthController {
	return &AuthController{accounts: accounts}
}

func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", c.register)
		auth.POST("/login", c.login)
		auth.POST("/logout", c.logout)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (c *AuthController) register(ctx *gin.Context) {
	var input in.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.accounts.Register(ctx.Request.Context(), input); err != nil {
		respondError(ctx, err, "failed to register")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"msg": "registered successfully"})
}

func (c *AuthController) login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.accounts.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err, "invalid credentials")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"user":      session.User,
	})
}

func (c *AuthController) logout(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.GetHeader(sessionHeader))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session id"})
		return
	}

	if err := c.accounts.Logout(ctx.Request.Context(), sessionID); err != nil {
		respondError(ctx, err, "failed to logout")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "logged out"})
}
