package handlers

import (
	"net/http"

	"notake_backend/internal/services"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NoteLinkHandler struct {
	BaseHandler
	linkService services.NoteLinkService
}

func NewNoteLinkHandler(base BaseHandler, linkService services.NoteLinkService) *NoteLinkHandler {
	return &NoteLinkHandler{BaseHandler: base, linkService: linkService}
}

func (h *NoteLinkHandler) Create(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.NoteLinkRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	link, err := h.linkService.CreateLink(h.GetDB(c), userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *NoteLinkHandler) List(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	links, err := h.linkService.ListLinks(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *NoteLinkHandler) Delete(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.linkService.DeleteLink(h.GetDB(c), userID, c.Param("linkId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
