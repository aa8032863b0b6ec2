package handlers

import (
	"net/http"

	"notake_backend/internal/services"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.ProfileUpdateRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image part"))
		return
	}

	upload, closeFn, err := openUpload(header)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer closeFn()

	profile, err := h.profileService.UploadProfileImage(c.Request.Context(), h.GetDB(c), userID, upload)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
