package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	Note     *NoteHandler
	NoteLink *NoteLinkHandler
	File     *FileHandler
	Profile  *ProfileHandler
}
