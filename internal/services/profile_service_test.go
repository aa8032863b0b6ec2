package services

import (
	"context"
	"strings"
	"testing"

	"notake_backend/internal/models"
	"notake_backend/internal/repositories"
	"notake_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestProfileService(t *testing.T) (ProfileService, *gorm.DB, *models.User) {
	t.Helper()

	db := setupTestDB(t)
	store := setupTestStorage(t)
	fileRepo := repositories.NewFileMetadataRepository()
	fileSvc := NewFileService(store, fileRepo, testMaxFileSize, testMaxImageSize)

	svc := NewProfileService(
		repositories.NewProfileRepository(),
		repositories.NewUserRepository(),
		repositories.NewNoteRepository(),
		repositories.NewNoteLinkRepository(),
		fileRepo,
		fileSvc,
	)
	user := createTestUser(t, db, "alice")
	return svc, db, user
}

func TestGetProfileCreatesOnFirstAccess(t *testing.T) {
	svc, db, user := newTestProfileService(t)

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Zero(t, profile.TotalNotes)

	// A second read reuses the same row.
	again, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	svc, db, user := newTestProfileService(t)

	bio := "hello"
	location := "Almaty"
	_, err := svc.UpdateProfile(db, user.ID, &dto.ProfileUpdateRequest{Bio: &bio, Location: &location})
	require.NoError(t, err)

	// Updating one field leaves the others in place.
	newBio := "updated"
	profile, err := svc.UpdateProfile(db, user.ID, &dto.ProfileUpdateRequest{Bio: &newBio})
	require.NoError(t, err)

	assert.Equal(t, "updated", profile.Bio)
	assert.Equal(t, "Almaty", profile.Location)
}

func TestUpdateProfileParsesDateOfBirth(t *testing.T) {
	svc, db, user := newTestProfileService(t)

	dob := "1990-04-15"
	profile, err := svc.UpdateProfile(db, user.ID, &dto.ProfileUpdateRequest{DateOfBirth: &dob})
	require.NoError(t, err)

	require.NotNil(t, profile.DateOfBirth)
	assert.Equal(t, 1990, profile.DateOfBirth.Year())
}

func TestProfileStatsCountOwnContent(t *testing.T) {
	svc, db, user := newTestProfileService(t)

	other := createTestUser(t, db, "bob")
	a := createTestNote(t, db, user.ID, "a")
	b := createTestNote(t, db, user.ID, "b")
	createTestNote(t, db, other.ID, "x")

	require.NoError(t, db.Create(&models.NoteLink{SourceNoteID: a.ID, TargetNoteID: b.ID}).Error)

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), profile.TotalNotes)
	assert.Equal(t, int64(1), profile.TotalLinks)
	assert.Equal(t, int64(0), profile.TotalFiles)
}

func TestUploadProfileImageReplacesURL(t *testing.T) {
	svc, db, user := newTestProfileService(t)
	ctx := context.Background()

	upload := &dto.FileUpload{
		OriginalName: "avatar.png",
		ContentType:  "image/png",
		Size:         3,
		Reader:       strings.NewReader("abc"),
	}
	profile, err := svc.UploadProfileImage(ctx, db, user.ID, upload)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(profile.ProfileImageURL, "/api/v1/files/profile/"))
	firstURL := profile.ProfileImageURL

	second := &dto.FileUpload{
		OriginalName: "avatar2.png",
		ContentType:  "image/png",
		Size:         3,
		Reader:       strings.NewReader("def"),
	}
	profile, err = svc.UploadProfileImage(ctx, db, user.ID, second)
	require.NoError(t, err)
	assert.NotEqual(t, firstURL, profile.ProfileImageURL)
}
