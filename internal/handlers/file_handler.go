package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"notake_backend/internal/services"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	BaseHandler
	fileService services.FileService
}

func NewFileHandler(base BaseHandler, fileService services.FileService) *FileHandler {
	return &FileHandler{BaseHandler: base, fileService: fileService}
}

func (h *FileHandler) Upload(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file part"))
		return
	}

	upload, closeFn, err := openUpload(header)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer closeFn()

	resp, err := h.fileService.UploadFile(c.Request.Context(), h.GetDB(c), userID, upload)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UploadMultiple stores each part independently; the response lists only
// the files that were accepted.
func (h *FileHandler) UploadMultiple(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form"))
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing files part"))
		return
	}

	uploads := make([]*dto.FileUpload, 0, len(headers))
	var closers []func()
	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()
	for _, header := range headers {
		upload, closeFn, err := openUpload(header)
		if err != nil {
			continue
		}
		uploads = append(uploads, upload)
		closers = append(closers, closeFn)
	}

	responses := h.fileService.UploadFiles(c.Request.Context(), h.GetDB(c), userID, uploads)
	c.JSON(http.StatusCreated, responses)
}

func (h *FileHandler) List(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	files, err := h.fileService.ListFiles(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (h *FileHandler) Download(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	metadata, reader, err := h.fileService.DownloadFile(c.Request.Context(), h.GetDB(c), userID, c.Param("fileId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	contentType := metadata.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", metadata.OriginalFileName),
	}
	c.DataFromReader(http.StatusOK, metadata.FileSize, contentType, reader, headers)
}

// ProfileImage is served without authentication; the name itself is the
// capability.
func (h *FileHandler) ProfileImage(c *gin.Context) {
	reader, contentType, err := h.fileService.GetProfileImage(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}

func (h *FileHandler) Delete(c *gin.Context) {
	userID, err := h.GetUserID(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.fileService.DeleteFile(c.Request.Context(), h.GetDB(c), userID, c.Param("fileId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func openUpload(header *multipart.FileHeader) (*dto.FileUpload, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &dto.FileUpload{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Reader:       f,
	}
	return upload, func() { f.Close() }, nil
}
