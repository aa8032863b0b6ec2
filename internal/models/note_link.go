package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteLink is a directed edge between two notes of the same owner.
// The composite unique index makes duplicate-edge prevention a storage
// guarantee rather than an application-level check, so concurrent creates
// for the same pair cannot both succeed.
type NoteLink struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	SourceNoteID string    `gorm:"not null;index;uniqueIndex:idx_note_links_source_target" json:"sourceNoteId"`
	TargetNoteID string    `gorm:"not null;uniqueIndex:idx_note_links_source_target" json:"targetNoteId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (l *NoteLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
