package dto

import (
	"io"
	"time"

	"notake_backend/internal/models"
)

// FileUpload describes one incoming blob, decoupled from the transport.
// OriginalName and ContentType are client-supplied and untrusted.
type FileUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Reader       io.Reader
}

// FileUploadResponse is the client view of a ledger row. FileURL is the
// stable download reference; the physical path is never exposed.
type FileUploadResponse struct {
	ID               string              `json:"id"`
	FileName         string              `json:"fileName"`
	OriginalFileName string              `json:"originalFileName"`
	FileType         string              `json:"fileType"`
	FileSize         int64               `json:"fileSize"`
	FileURL          string              `json:"fileUrl"`
	Category         models.FileCategory `json:"category"`
	UploadDate       time.Time           `json:"uploadDate"`
}
