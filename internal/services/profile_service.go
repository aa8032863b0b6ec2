package services

import (
	"context"
	"errors"
	"time"

	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.ProfileUpdateRequest) (*dto.ProfileResponse, error)
	UploadProfileImage(ctx context.Context, db *gorm.DB, userID string, upload *dto.FileUpload) (*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	noteRepo    repositories.NoteRepository
	linkRepo    repositories.NoteLinkRepository
	fileRepo    repositories.FileMetadataRepository
	fileService FileService
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	noteRepo repositories.NoteRepository,
	linkRepo repositories.NoteLinkRepository,
	fileRepo repositories.FileMetadataRepository,
	fileService FileService,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		linkRepo:    linkRepo,
		fileRepo:    fileRepo,
		fileService: fileService,
	}
}

func (s *profileService) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, user, err := s.getOrCreate(db, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(db, profile, user)
}

func (s *profileService) UpdateProfile(db *gorm.DB, userID string, req *dto.ProfileUpdateRequest) (*dto.ProfileResponse, error) {
	profile, user, err := s.getOrCreate(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.DateOfBirth != nil {
		if dob, err := time.Parse(time.RFC3339, *req.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		} else if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(db, profile, user)
}

func (s *profileService) UploadProfileImage(ctx context.Context, db *gorm.DB, userID string, upload *dto.FileUpload) (*dto.ProfileResponse, error) {
	profile, user, err := s.getOrCreate(db, userID)
	if err != nil {
		return nil, err
	}

	fileName, err := s.fileService.StoreProfileImage(ctx, userID, upload)
	if err != nil {
		return nil, err
	}

	// Drop the old image once the new one is in place. Best effort: a
	// stale blob is preferable to a profile without an image.
	if profile.ProfileImageURL != "" {
		s.fileService.DeleteProfileImage(ctx, profile.ProfileImageURL)
	}

	profile.ProfileImageURL = "/api/v1/files/profile/" + fileName
	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponse(db, profile, user)
}

func (s *profileService) getOrCreate(db *gorm.DB, userID string) (*models.Profile, *models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, nil, apperrors.ErrNotFound(err)
	}

	profile, err := s.profileRepo.FindByUser(db, userID)
	if err == nil {
		return profile, user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.InternalError(err)
	}

	profile = &models.Profile{UserID: userID}
	if err := s.profileRepo.Create(db, profile); err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return profile, user, nil
}

func (s *profileService) toResponse(db *gorm.DB, profile *models.Profile, user *models.User) (*dto.ProfileResponse, error) {
	notes, err := s.noteRepo.CountByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	files, err := s.fileRepo.CountByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	links, err := s.linkRepo.CountByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		ID:              profile.ID,
		UserID:          user.ID,
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		ProfileImageURL: profile.ProfileImageURL,
		Bio:             profile.Bio,
		Location:        profile.Location,
		Phone:           profile.Phone,
		Website:         profile.Website,
		DateOfBirth:     profile.DateOfBirth,
		MemberSince:     user.CreatedAt,
		TotalNotes:      notes,
		TotalFiles:      files,
		TotalLinks:      links,
	}, nil
}
