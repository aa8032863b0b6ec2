package dto

type NoteRequest struct {
	Title   string `json:"title" binding:"required" validate:"required,max=200"`
	Content string `json:"content"`
}

type NoteLinkRequest struct {
	SourceNoteID string `json:"sourceNoteId" binding:"required" validate:"required"`
	TargetNoteID string `json:"targetNoteId" binding:"required" validate:"required"`
}
