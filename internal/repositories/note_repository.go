package repositories

import (
	"notake_backend/internal/models"

	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(db *gorm.DB, note *models.Note) error
	// FindByIDAndUser resolves a note only when it exists AND belongs to
	// the user. Both misses surface as gorm.ErrRecordNotFound, so callers
	// cannot distinguish "absent" from "owned by someone else".
	FindByIDAndUser(db *gorm.DB, id, userID string) (*models.Note, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Note, error)
	Save(db *gorm.DB, note *models.Note) error
	Delete(db *gorm.DB, id string) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type noteRepository struct{}

func NewNoteRepository() NoteRepository {
	return &noteRepository{}
}

func (r *noteRepository) Create(db *gorm.DB, note *models.Note) error {
	return db.Create(note).Error
}

func (r *noteRepository) FindByIDAndUser(db *gorm.DB, id, userID string) (*models.Note, error) {
	var note models.Note
	if err := db.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) FindByUser(db *gorm.DB, userID string) ([]models.Note, error) {
	var notes []models.Note
	err := db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Save(db *gorm.DB, note *models.Note) error {
	return db.Save(note).Error
}

func (r *noteRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Note{}, "id = ?", id).Error
}

func (r *noteRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Note{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
