package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"notake_backend/database"
	"notake_backend/internal/config"
	"notake_backend/internal/logger"
	"notake_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxFileSize = 1024 * 1024
	cfg.Upload.MaxProfileImageSize = 512 * 1024
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to ":memory:" gets its own database, so the
	// pool must stay at one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	return SetupRouter(db, store, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createNote(t *testing.T, r *gin.Engine, token, title string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/notes", token, gin.H{"title": title, "content": "body"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var note struct {
		ID string `json:"id"`
	}
	decode(t, w, &note)
	return note.ID
}

func TestHealth(t *testing.T) {
	r := setupTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	r := setupTestApp(t)

	token := registerUser(t, r, "alice")

	// /me works with the fresh token.
	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Login with the same credentials.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice", "password": "sup3rsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password is a 401.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Protected routes reject missing and bogus tokens.
	w = doJSON(t, r, http.MethodGet, "/api/v1/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/v1/notes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := setupTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "ab", // too short
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotesAreInvisibleAcrossUsers(t *testing.T) {
	r := setupTestApp(t)

	alice := registerUser(t, r, "alice")
	bob := registerUser(t, r, "bob")

	noteID := createNote(t, r, bob, "bob's note")

	// Alice sees the same 404 for bob's note and for a random id.
	foreign := doJSON(t, r, http.MethodGet, "/api/v1/notes/"+noteID, alice, nil)
	missing := doJSON(t, r, http.MethodGet, "/api/v1/notes/nonexistent", alice, nil)

	assert.Equal(t, http.StatusNotFound, foreign.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, missing.Body.String(), foreign.Body.String())
}

func TestNoteLinkFlow(t *testing.T) {
	r := setupTestApp(t)
	token := registerUser(t, r, "alice")

	a := createNote(t, r, token, "a")
	b := createNote(t, r, token, "b")

	w := doJSON(t, r, http.MethodPost, "/api/v1/note-links", token, gin.H{
		"sourceNoteId": a, "targetNoteId": b,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var link struct {
		ID           string `json:"id"`
		SourceNoteID string `json:"sourceNoteId"`
		TargetNoteID string `json:"targetNoteId"`
	}
	decode(t, w, &link)
	assert.Equal(t, a, link.SourceNoteID)
	assert.Equal(t, b, link.TargetNoteID)

	// Same pair again is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/v1/note-links", token, gin.H{
		"sourceNoteId": a, "targetNoteId": b,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Deleting note a cascades the edge away.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/notes/"+a, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/note-links", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var links []json.RawMessage
	decode(t, w, &links)
	assert.Empty(t, links)
}

func uploadFile(t *testing.T, r *gin.Engine, token, field, name, contentType, content string, url string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFileUploadDownloadDelete(t *testing.T) {
	r := setupTestApp(t)
	token := registerUser(t, r, "alice")

	w := uploadFile(t, r, token, "file", "report.pdf", "application/pdf", "pdf-bytes", "/api/v1/files/upload")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var file struct {
		ID       string `json:"id"`
		FileURL  string `json:"fileUrl"`
		Category string `json:"category"`
	}
	decode(t, w, &file)
	assert.Equal(t, "DOCUMENT", file.Category)

	// Download through the returned URL.
	dl := doJSON(t, r, http.MethodGet, file.FileURL, token, nil)
	require.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, "pdf-bytes", dl.Body.String())
	assert.Contains(t, dl.Header().Get("Content-Disposition"), "report.pdf")

	// Other users cannot see it.
	bob := registerUser(t, r, "bob")
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, file.FileURL, bob, nil).Code)

	// Delete, then the download 404s.
	assert.Equal(t, http.StatusNoContent, doJSON(t, r, http.MethodDelete, "/api/v1/files/"+file.ID, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, file.FileURL, token, nil).Code)
}

func TestProfileFlow(t *testing.T) {
	r := setupTestApp(t)
	token := registerUser(t, r, "alice")
	createNote(t, r, token, "a note")

	w := doJSON(t, r, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Username        string `json:"username"`
		TotalNotes      int64  `json:"totalNotes"`
		ProfileImageURL string `json:"profileImageUrl"`
	}
	decode(t, w, &profile)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(1), profile.TotalNotes)

	w = doJSON(t, r, http.MethodPut, "/api/v1/profile", token, gin.H{"bio": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	// Upload an image, then fetch it anonymously through the public route.
	w = uploadFile(t, r, token, "image", "avatar.png", "image/png", "png-bytes", "/api/v1/profile/image")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &profile)
	require.NotEmpty(t, profile.ProfileImageURL)

	img := doJSON(t, r, http.MethodGet, profile.ProfileImageURL, "", nil)
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "png-bytes", img.Body.String())

	// Non-image uploads are rejected.
	w = uploadFile(t, r, token, "image", "doc.pdf", "application/pdf", "x", "/api/v1/profile/image")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
