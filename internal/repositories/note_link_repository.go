package repositories

import (
	"notake_backend/internal/models"

	"gorm.io/gorm"
)

type NoteLinkRepository interface {
	// Create inserts an edge. A duplicate (source, target) pair violates
	// the unique index and surfaces as gorm.ErrDuplicatedKey.
	Create(db *gorm.DB, link *models.NoteLink) error
	FindByID(db *gorm.DB, id string) (*models.NoteLink, error)
	// FindByUser returns every edge whose source note belongs to the user.
	FindByUser(db *gorm.DB, userID string) ([]models.NoteLink, error)
	Delete(db *gorm.DB, id string) error
	// DeleteByNote removes every edge touching the note, as source or
	// target. Run inside the same transaction as the note deletion.
	DeleteByNote(db *gorm.DB, noteID string) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type noteLinkRepository struct{}

func NewNoteLinkRepository() NoteLinkRepository {
	return &noteLinkRepository{}
}

func (r *noteLinkRepository) Create(db *gorm.DB, link *models.NoteLink) error {
	return db.Create(link).Error
}

func (r *noteLinkRepository) FindByID(db *gorm.DB, id string) (*models.NoteLink, error) {
	var link models.NoteLink
	if err := db.First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *noteLinkRepository) FindByUser(db *gorm.DB, userID string) ([]models.NoteLink, error) {
	var links []models.NoteLink
	err := db.
		Joins("JOIN notes ON notes.id = note_links.source_note_id").
		Where("notes.user_id = ?", userID).
		Find(&links).Error
	return links, err
}

func (r *noteLinkRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.NoteLink{}, "id = ?", id).Error
}

func (r *noteLinkRepository) DeleteByNote(db *gorm.DB, noteID string) error {
	return db.
		Where("source_note_id = ? OR target_note_id = ?", noteID, noteID).
		Delete(&models.NoteLink{}).Error
}

func (r *noteLinkRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.NoteLink{}).
		Joins("JOIN notes ON notes.id = note_links.source_note_id").
		Where("notes.user_id = ?", userID).
		Count(&count).Error
	return count, err
}
