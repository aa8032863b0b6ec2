package services

import (
	"testing"

	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"
	"notake_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoteService(repositories.NewNoteRepository(), repositories.NewNoteLinkRepository())
	user := createTestUser(t, db, "alice")

	note, err := svc.CreateNote(db, user.ID, &dto.NoteRequest{Title: "first", Content: "body"})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)

	got, err := svc.GetNote(db, user.ID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)

	updated, err := svc.UpdateNote(db, user.ID, note.ID, &dto.NoteRequest{Title: "renamed", Content: "body2"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	notes, err := svc.ListNotes(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, svc.DeleteNote(db, user.ID, note.ID))

	notes, err = svc.ListNotes(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteOwnershipIsInvisible(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoteService(repositories.NewNoteRepository(), repositories.NewNoteLinkRepository())
	user := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")

	theirs := createTestNote(t, db, other.ID, "private")

	_, foreignErr := svc.GetNote(db, user.ID, theirs.ID)
	_, missingErr := svc.GetNote(db, user.ID, "no-such-id")

	foreignApp, ok := apperrors.AsAppError(foreignErr)
	require.True(t, ok)
	missingApp, ok := apperrors.AsAppError(missingErr)
	require.True(t, ok)

	assert.Equal(t, 404, foreignApp.HTTPCode)
	assert.Equal(t, missingApp.Message, foreignApp.Message)

	// Update and delete are guarded the same way.
	_, err := svc.UpdateNote(db, user.ID, theirs.ID, &dto.NoteRequest{Title: "hijack"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	err = svc.DeleteNote(db, user.ID, theirs.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListNotesMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoteService(repositories.NewNoteRepository(), repositories.NewNoteLinkRepository())
	user := createTestUser(t, db, "alice")

	first, err := svc.CreateNote(db, user.ID, &dto.NoteRequest{Title: "older"})
	require.NoError(t, err)
	_, err = svc.CreateNote(db, user.ID, &dto.NoteRequest{Title: "newer"})
	require.NoError(t, err)

	// Touching the older note moves it back to the top.
	_, err = svc.UpdateNote(db, user.ID, first.ID, &dto.NoteRequest{Title: "older touched"})
	require.NoError(t, err)

	notes, err := svc.ListNotes(db, user.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "older touched", notes[0].Title)
}
