package api

import "pathshala/internal/client/session"

// AuthResult is the successful outcome of a login or register call.
type AuthResult struct {
	Token string
	User  session.User
}

// RegisterRequest carries the fields of the sign-up form. ConfirmPassword is
// validated client-side and never sent over the wire.
type RegisterRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Mobile          string
	Gender          string
	Password        string
	ConfirmPassword string
}

// Note is a study-material record as the backend returns it.
type Note struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	S3Key       string `json:"s3_key"`
	UploadedBy  string `json:"uploaded_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NoteEntry pairs a note with a short-lived download URL.
type NoteEntry struct {
	Note        Note   `json:"note"`
	DownloadURL string `json:"download_url"`
}

// --- wire DTOs ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    session.User `json:"user"`
}

type notesResponse struct {
	Message string      `json:"message"`
	Notes   []NoteEntry `json:"notes"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
