package handlers

import (
	"net/http"

	"notake_backend/internal/services"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	BaseHandler
	noteService services.NoteService
}

func NewNoteHandler(base BaseHandler, noteService services.NoteService) *NoteHandler {
	return &NoteHandler{BaseHandler: base, noteService: noteService}
}

func (h *NoteHandler) Create(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.NoteRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	note, err := h.noteService.CreateNote(h.GetDB(c), userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) List(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	notes, err := h.noteService.ListNotes(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Get(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	note, err := h.noteService.GetNote(h.GetDB(c), userID, c.Param("noteId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.NoteRequest
	if err := h.BindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	note, err := h.noteService.UpdateNote(h.GetDB(c), userID, c.Param("noteId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.noteService.DeleteNote(h.GetDB(c), userID, c.Param("noteId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
