package dto

import "time"

// ProfileUpdateRequest patches individual fields; nil pointers leave the
// stored value untouched.
type ProfileUpdateRequest struct {
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
	Location    *string `json:"location" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Website     *string `json:"website" validate:"omitempty,max=200"`
	DateOfBirth *string `json:"dateOfBirth"` // RFC 3339, invalid values are skipped
}

type ProfileResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FullName        string     `json:"fullName"`
	ProfileImageURL string     `json:"profileImageUrl"`
	Bio             string     `json:"bio"`
	Location        string     `json:"location"`
	Phone           string     `json:"phone"`
	Website         string     `json:"website"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	MemberSince     time.Time  `json:"memberSince"`
	TotalNotes      int64      `json:"totalNotes"`
	TotalFiles      int64      `json:"totalFiles"`
	TotalLinks      int64      `json:"totalLinks"`
}
