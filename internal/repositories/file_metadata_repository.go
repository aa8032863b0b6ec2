package repositories

import (
	"notake_backend/internal/models"

	"gorm.io/gorm"
)

type FileMetadataRepository interface {
	Create(db *gorm.DB, metadata *models.FileMetadata) error
	// FindByIDAndUser is the ownership guard for file operations: a miss
	// and a foreign row both return gorm.ErrRecordNotFound.
	FindByIDAndUser(db *gorm.DB, id, userID string) (*models.FileMetadata, error)
	FindByUser(db *gorm.DB, userID string) ([]models.FileMetadata, error)
	FindAll(db *gorm.DB) ([]models.FileMetadata, error)
	Delete(db *gorm.DB, id string) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type fileMetadataRepository struct{}

func NewFileMetadataRepository() FileMetadataRepository {
	return &fileMetadataRepository{}
}

func (r *fileMetadataRepository) Create(db *gorm.DB, metadata *models.FileMetadata) error {
	return db.Create(metadata).Error
}

func (r *fileMetadataRepository) FindByIDAndUser(db *gorm.DB, id, userID string) (*models.FileMetadata, error) {
	var metadata models.FileMetadata
	if err := db.First(&metadata, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (r *fileMetadataRepository) FindByUser(db *gorm.DB, userID string) ([]models.FileMetadata, error) {
	var files []models.FileMetadata
	err := db.Where("user_id = ?", userID).
		Order("upload_date DESC").
		Find(&files).Error
	return files, err
}

func (r *fileMetadataRepository) FindAll(db *gorm.DB) ([]models.FileMetadata, error) {
	var files []models.FileMetadata
	err := db.Find(&files).Error
	return files, err
}

func (r *fileMetadataRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.FileMetadata{}, "id = ?", id).Error
}

func (r *fileMetadataRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.FileMetadata{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
