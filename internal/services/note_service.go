package services

import (
	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NoteService interface {
	CreateNote(db *gorm.DB, userID string, req *dto.NoteRequest) (*models.Note, error)
	ListNotes(db *gorm.DB, userID string) ([]models.Note, error)
	GetNote(db *gorm.DB, userID, noteID string) (*models.Note, error)
	UpdateNote(db *gorm.DB, userID, noteID string, req *dto.NoteRequest) (*models.Note, error)
	DeleteNote(db *gorm.DB, userID, noteID string) error
}

type noteService struct {
	noteRepo repositories.NoteRepository
	linkRepo repositories.NoteLinkRepository
}

func NewNoteService(noteRepo repositories.NoteRepository, linkRepo repositories.NoteLinkRepository) NoteService {
	return &noteService{noteRepo: noteRepo, linkRepo: linkRepo}
}

func (s *noteService) CreateNote(db *gorm.DB, userID string, req *dto.NoteRequest) (*models.Note, error) {
	note := &models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.noteRepo.Create(db, note); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return note, nil
}

func (s *noteService) ListNotes(db *gorm.DB, userID string) ([]models.Note, error) {
	notes, err := s.noteRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notes, nil
}

func (s *noteService) GetNote(db *gorm.DB, userID, noteID string) (*models.Note, error) {
	note, err := s.noteRepo.FindByIDAndUser(db, noteID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return note, nil
}

func (s *noteService) UpdateNote(db *gorm.DB, userID, noteID string, req *dto.NoteRequest) (*models.Note, error) {
	note, err := s.noteRepo.FindByIDAndUser(db, noteID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	note.Title = req.Title
	note.Content = req.Content
	if err := s.noteRepo.Save(db, note); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return note, nil
}

// DeleteNote removes the note and every link touching it, atomically.
// A crash never leaves edges pointing at a deleted note.
func (s *noteService) DeleteNote(db *gorm.DB, userID, noteID string) error {
	note, err := s.noteRepo.FindByIDAndUser(db, noteID, userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.linkRepo.DeleteByNote(tx, note.ID); err != nil {
			return err
		}
		return s.noteRepo.Delete(tx, note.ID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
