package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"notake_backend/internal/logger"
	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/internal/storage"
	"notake_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService owns the blob store and its metadata ledger. User files get
// a ledger row keyed by a generated name; profile images live in their own
// area, addressed by name only, with no ledger row.
type FileService interface {
	UploadFile(ctx context.Context, db *gorm.DB, userID string, upload *dto.FileUpload) (*dto.FileUploadResponse, error)
	UploadFiles(ctx context.Context, db *gorm.DB, userID string, uploads []*dto.FileUpload) []*dto.FileUploadResponse
	ListFiles(db *gorm.DB, userID string) ([]*dto.FileUploadResponse, error)
	DownloadFile(ctx context.Context, db *gorm.DB, userID, fileID string) (*models.FileMetadata, io.ReadCloser, error)
	DeleteFile(ctx context.Context, db *gorm.DB, userID, fileID string) error

	StoreProfileImage(ctx context.Context, userID string, upload *dto.FileUpload) (string, error)
	GetProfileImage(ctx context.Context, fileName string) (io.ReadCloser, string, error)
	DeleteProfileImage(ctx context.Context, fileName string)
}

type fileService struct {
	store               storage.Storage
	fileRepo            repositories.FileMetadataRepository
	maxFileSize         int64
	maxProfileImageSize int64
}

func NewFileService(store storage.Storage, fileRepo repositories.FileMetadataRepository, maxFileSize, maxProfileImageSize int64) FileService {
	return &fileService{
		store:               store,
		fileRepo:            fileRepo,
		maxFileSize:         maxFileSize,
		maxProfileImageSize: maxProfileImageSize,
	}
}

func (s *fileService) UploadFile(ctx context.Context, db *gorm.DB, userID string, upload *dto.FileUpload) (*dto.FileUploadResponse, error) {
	if err := s.validateUpload(upload, s.maxFileSize); err != nil {
		return nil, err
	}

	fileName := generateFileName(upload.OriginalName)
	filePath := path.Join(storage.AreaUserFiles, fileName)

	// Blob first, ledger second. A crash between the two leaves an
	// unreferenced blob, never a row pointing at nothing.
	if err := s.store.Save(ctx, filePath, upload.Reader, upload.ContentType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	metadata := &models.FileMetadata{
		UserID:           userID,
		FileName:         fileName,
		OriginalFileName: upload.OriginalName,
		FileType:         upload.ContentType,
		FileSize:         upload.Size,
		FilePath:         filePath,
	}
	if err := s.fileRepo.Create(db, metadata); err != nil {
		if delErr := s.store.Delete(ctx, filePath); delErr != nil {
			logger.CtxWarn(ctx, "failed to roll back blob after ledger error",
				"path", filePath, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.toResponse(metadata), nil
}

// UploadFiles stores each upload independently. Failures are logged and
// skipped; the result holds only the files that made it in.
func (s *fileService) UploadFiles(ctx context.Context, db *gorm.DB, userID string, uploads []*dto.FileUpload) []*dto.FileUploadResponse {
	responses := make([]*dto.FileUploadResponse, 0, len(uploads))
	for _, upload := range uploads {
		resp, err := s.UploadFile(ctx, db, userID, upload)
		if err != nil {
			logger.CtxWarn(ctx, "skipping file in batch upload",
				"fileName", upload.OriginalName, "error", err)
			continue
		}
		responses = append(responses, resp)
	}
	return responses
}

func (s *fileService) ListFiles(db *gorm.DB, userID string) ([]*dto.FileUploadResponse, error) {
	files, err := s.fileRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.FileUploadResponse, 0, len(files))
	for i := range files {
		responses = append(responses, s.toResponse(&files[i]))
	}
	return responses, nil
}

func (s *fileService) DownloadFile(ctx context.Context, db *gorm.DB, userID, fileID string) (*models.FileMetadata, io.ReadCloser, error) {
	metadata, err := s.fileRepo.FindByIDAndUser(db, fileID, userID)
	if err != nil {
		return nil, nil, apperrors.ErrNotFound(err)
	}

	exists, err := s.store.Exists(ctx, metadata.FilePath)
	if err != nil {
		return nil, nil, apperrors.StorageError(err)
	}
	if !exists {
		// Ledger row without a blob. Keep the row for the sweeper to
		// report; the client just sees a missing file.
		logger.CtxWarn(ctx, "ledger row points at missing blob",
			"fileId", metadata.ID, "path", metadata.FilePath)
		return nil, nil, apperrors.NewNotFoundError("File not found")
	}

	reader, err := s.store.Get(ctx, metadata.FilePath)
	if err != nil {
		return nil, nil, apperrors.StorageError(err)
	}
	return metadata, reader, nil
}

func (s *fileService) DeleteFile(ctx context.Context, db *gorm.DB, userID, fileID string) error {
	metadata, err := s.fileRepo.FindByIDAndUser(db, fileID, userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	// Blob first. If the row delete fails the blob is already gone and a
	// retry hits the idempotent path.
	if err := s.store.Delete(ctx, metadata.FilePath); err != nil {
		return apperrors.StorageError(err)
	}
	if err := s.fileRepo.Delete(db, metadata.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *fileService) StoreProfileImage(ctx context.Context, userID string, upload *dto.FileUpload) (string, error) {
	if err := s.validateUpload(upload, s.maxProfileImageSize); err != nil {
		return "", err
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", apperrors.ErrInvalidFileType
	}

	fileName := fmt.Sprintf("profile_%s_%s%s", userID, uuid.NewString(), filepath.Ext(upload.OriginalName))
	filePath := path.Join(storage.AreaProfileImages, fileName)

	if err := s.store.Save(ctx, filePath, upload.Reader, upload.ContentType); err != nil {
		return "", apperrors.StorageError(err)
	}
	return fileName, nil
}

// GetProfileImage serves an image by its stored name. The area is public:
// any caller who knows the unguessable name may read it.
func (s *fileService) GetProfileImage(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	name := path.Base(fileName)
	filePath := path.Join(storage.AreaProfileImages, name)

	exists, err := s.store.Exists(ctx, filePath)
	if err != nil {
		return nil, "", apperrors.StorageError(err)
	}
	if !exists {
		return nil, "", apperrors.NewNotFoundError("Image not found")
	}

	reader, err := s.store.Get(ctx, filePath)
	if err != nil {
		return nil, "", apperrors.StorageError(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return reader, contentType, nil
}

// DeleteProfileImage is best effort. Replacing an image must not fail
// because the old blob could not be removed.
func (s *fileService) DeleteProfileImage(ctx context.Context, fileName string) {
	if fileName == "" {
		return
	}
	filePath := path.Join(storage.AreaProfileImages, path.Base(fileName))
	if err := s.store.Delete(ctx, filePath); err != nil {
		logger.CtxWarn(ctx, "failed to delete old profile image",
			"path", filePath, "error", err)
	}
}

func (s *fileService) validateUpload(upload *dto.FileUpload, maxSize int64) error {
	if upload == nil || upload.Size == 0 {
		return apperrors.ErrFileEmpty
	}
	if upload.Size > maxSize {
		return apperrors.ErrFileTooLarge
	}
	if strings.Contains(upload.OriginalName, "..") {
		return apperrors.ErrInvalidFileName
	}
	return nil
}

func (s *fileService) toResponse(metadata *models.FileMetadata) *dto.FileUploadResponse {
	return &dto.FileUploadResponse{
		ID:               metadata.ID,
		FileName:         metadata.FileName,
		OriginalFileName: metadata.OriginalFileName,
		FileType:         metadata.FileType,
		FileSize:         metadata.FileSize,
		FileURL:          "/api/v1/files/download/" + metadata.ID,
		Category:         metadata.Category,
		UploadDate:       metadata.UploadDate,
	}
}

// generateFileName keeps the original extension on a fresh uuid so stored
// names never collide and never carry client-controlled path parts.
func generateFileName(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}
