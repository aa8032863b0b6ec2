package handlers

import (
	"notake_backend/internal/middleware"
	"notake_backend/internal/validator"
	"notake_backend/pkg/apperrors"
	"notake_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// GetDB pulls the request-scoped connection handle set by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		return nil
	}
	return db.(*gorm.DB)
}

// GetUserID returns the authenticated caller's id, or an error when the
// route was somehow reached without AuthMiddleware.
func (h *BaseHandler) GetUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// BindAndValidate decodes the JSON body and runs struct validation.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperrors.NewBadRequestError("Invalid request body")
	}
	if err := h.Validator.Validate(obj); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			return apperrors.ValidationError(ve.Errors)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
