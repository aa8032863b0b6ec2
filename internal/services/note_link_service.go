package services

import (
	"errors"

	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// NoteLinkService manages the directed edges between notes. Both endpoints
// of an edge must belong to the caller; lookups that miss for any reason,
// absence or foreign ownership alike, come back as the same not-found.
type NoteLinkService interface {
	CreateLink(db *gorm.DB, userID string, req *dto.NoteLinkRequest) (*models.NoteLink, error)
	ListLinks(db *gorm.DB, userID string) ([]models.NoteLink, error)
	DeleteLink(db *gorm.DB, userID, linkID string) error
}

type noteLinkService struct {
	noteRepo repositories.NoteRepository
	linkRepo repositories.NoteLinkRepository
}

func NewNoteLinkService(noteRepo repositories.NoteRepository, linkRepo repositories.NoteLinkRepository) NoteLinkService {
	return &noteLinkService{noteRepo: noteRepo, linkRepo: linkRepo}
}

func (s *noteLinkService) CreateLink(db *gorm.DB, userID string, req *dto.NoteLinkRequest) (*models.NoteLink, error) {
	if _, err := s.noteRepo.FindByIDAndUser(db, req.SourceNoteID, userID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if _, err := s.noteRepo.FindByIDAndUser(db, req.TargetNoteID, userID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	link := &models.NoteLink{
		SourceNoteID: req.SourceNoteID,
		TargetNoteID: req.TargetNoteID,
	}
	// The unique index arbitrates concurrent inserts of the same pair;
	// exactly one wins, the rest land here.
	if err := s.linkRepo.Create(db, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLinkExists
		}
		return nil, apperrors.InternalError(err)
	}
	return link, nil
}

func (s *noteLinkService) ListLinks(db *gorm.DB, userID string) ([]models.NoteLink, error) {
	links, err := s.linkRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return links, nil
}

func (s *noteLinkService) DeleteLink(db *gorm.DB, userID, linkID string) error {
	link, err := s.linkRepo.FindByID(db, linkID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	// Ownership rides on the source note.
	if _, err := s.noteRepo.FindByIDAndUser(db, link.SourceNoteID, userID); err != nil {
		return apperrors.ErrNotFound(err)
	}
	if err := s.linkRepo.Delete(db, link.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
