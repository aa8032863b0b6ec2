package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileCategory string

const (
	FileCategoryDocument FileCategory = "DOCUMENT"
	FileCategoryImage    FileCategory = "IMAGE"
	FileCategoryVideo    FileCategory = "VIDEO"
	FileCategoryAudio    FileCategory = "AUDIO"
	FileCategoryOther    FileCategory = "OTHER"
)

// documentHints are matched as substrings, after the media prefixes.
var documentHints = []string{"pdf", "document", "text", "word", "excel", "powerpoint"}

// DetectFileCategory maps a declared MIME type to a category.
// Ordered rules: media prefixes first, then document substring hints,
// everything else (including an empty type) is OTHER.
func DetectFileCategory(fileType string) FileCategory {
	if fileType == "" {
		return FileCategoryOther
	}

	t := strings.ToLower(fileType)
	switch {
	case strings.HasPrefix(t, "image/"):
		return FileCategoryImage
	case strings.HasPrefix(t, "video/"):
		return FileCategoryVideo
	case strings.HasPrefix(t, "audio/"):
		return FileCategoryAudio
	}

	for _, hint := range documentHints {
		if strings.Contains(t, hint) {
			return FileCategoryDocument
		}
	}
	return FileCategoryOther
}

// FileMetadata is the ledger row for a stored blob. FilePath is the only
// mapping from the public id to the physical location and is never
// serialized to clients.
type FileMetadata struct {
	ID               string       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string       `gorm:"not null;index" json:"-"`
	FileName         string       `gorm:"uniqueIndex;not null" json:"fileName"`
	OriginalFileName string       `gorm:"not null" json:"originalFileName"`
	FileType         string       `json:"fileType"`
	FileSize         int64        `gorm:"not null" json:"fileSize"`
	FilePath         string       `gorm:"not null" json:"-"`
	Category         FileCategory `gorm:"type:varchar(20);not null" json:"category"`
	UploadDate       time.Time    `gorm:"autoCreateTime" json:"uploadDate"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (f *FileMetadata) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Category == "" {
		f.Category = DetectFileCategory(f.FileType)
	}
	return nil
}
