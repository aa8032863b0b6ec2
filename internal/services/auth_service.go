package services

import (
	"errors"

	"notake_backend/internal/auth"
	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(db *gorm.DB, userID string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	taken, err := s.userRepo.ExistsByUsername(db, req.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         models.UserRoleUser,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration slipped past the pre-checks; the
			// unique index caught it. Report the same answer the checks
			// would have given.
			if taken, checkErr := s.userRepo.ExistsByUsername(db, req.Username); checkErr == nil && taken {
				return nil, apperrors.ErrUsernameTaken
			}
			if taken, checkErr := s.userRepo.ExistsByEmail(db, req.Email); checkErr == nil && taken {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		// Same answer for unknown user and wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueToken(user)
}

func (s *authService) GetUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return user, nil
}

func (s *authService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}
