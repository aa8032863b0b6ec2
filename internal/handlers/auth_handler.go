package handlers

import (
	"net/http"

	"notake_backend/internal/services"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	resp, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user, mainly for token validation.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	user, err := h.authService.GetUser(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
