package models

import "time"

// Profile is the one-to-one extension of a User. ProfileImageURL points at
// a blob under the profile-images area; profile images are addressed by
// generated file name only and are not tracked in the file ledger.
type Profile struct {
	BaseModel
	UserID          string     `gorm:"uniqueIndex;not null" json:"userId"`
	Bio             string     `json:"bio"`
	Location        string     `json:"location"`
	Phone           string     `json:"phone"`
	Website         string     `json:"website"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	ProfileImageURL string     `json:"profileImageUrl"`
}
