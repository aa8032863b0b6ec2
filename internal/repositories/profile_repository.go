package repositories

import (
	"notake_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUser(db *gorm.DB, userID string) (*models.Profile, error)
	Save(db *gorm.DB, profile *models.Profile) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUser(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}
