// Package httpapi wires the HTTP routes of the Pathshala backend to the
// service layer using gin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pathshala/internal/common"
	"pathshala/internal/logging"
	"pathshala/internal/server/models"
	"pathshala/internal/server/services"
)

// userService is the slice of UserService the handlers need.
type userService interface {
	Register(ctx context.Context, user *models.User, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// noteService is the slice of NoteService the handlers need.
type noteService interface {
	Upload(ctx context.Context, userID string, note *models.Note, body io.Reader) (*services.NoteEntry, error)
	ListForUser(ctx context.Context, userID string) ([]*services.NoteEntry, error)
	ListAll(ctx context.Context) ([]*services.NoteEntry, error)
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     userService
	notes     noteService
	jwtSecret []byte
	logger    logging.Logger
}

func NewHandler(users userService, notes noteService, jwtSecret []byte, logger logging.Logger) *Handler {
	return &Handler{
		users:     users,
		notes:     notes,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/register", h.register)
		}

		notes := api.Group("/notes")
		notes.Use(h.authMiddleware())
		{
			notes.GET("", h.listNotes)
			notes.POST("/upload", h.uploadNote)
		}

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Mobile    string `json:"mobile" binding:"required"`
	Gender    string `json:"gender"`
}

type userJSON struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type noteJSON struct {
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

type noteEntryJSON struct {
	Note        noteJSON `json:"note"`
	DownloadURL string   `json:"download_url"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Gender:    u.Gender,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func toNoteJSON(n *models.Note) noteJSON {
	return noteJSON{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		FileName:    n.FileName,
		ContentType: n.ContentType,
		FileSize:    n.FileSize,
		S3Key:       n.StorageKey,
		UploadedBy:  n.UploadedBy,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
			return
		}
		h.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   res.Token,
		"user":    toUserJSON(res.User),
	})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid registration data"})
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Gender:    req.Gender,
	}

	res, err := h.users.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"message": "email already registered"})
			return
		}
		h.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"token":   res.Token,
		"user":    toUserJSON(res.User),
	})
}

// listNotes returns the caller's own notes; admins see every user's notes.
func (h *Handler) listNotes(c *gin.Context) {
	var entries []*services.NoteEntry
	var err error

	if c.GetString(ctxRoleKey) == common.RoleAdmin {
		entries, err = h.notes.ListAll(c.Request.Context())
	} else {
		entries, err = h.notes.ListForUser(c.Request.Context(), c.GetString(ctxUserIDKey))
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing notes failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	out := make([]noteEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, noteEntryJSON{Note: toNoteJSON(e.Note), DownloadURL: e.DownloadURL})
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "notes": out})
}

// maxUploadSize caps a single note upload at 50 MB. Variable so tests can
// lower it.
var maxUploadSize int64 = 50 << 20

func (h *Handler) uploadNote(c *gin.Context) {
	userID := c.GetString(ctxUserIDKey)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge,
				gin.H{"message": fmt.Sprintf("file too large, the limit is %d MB", tooBig.Limit>>20)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cannot read uploaded file"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	note := &models.Note{
		Title:       title,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		FileSize:    fileHeader.Size,
	}

	entry, err := h.notes.Upload(c.Request.Context(), userID, note, f)
	if err != nil {
		h.logger.Error(c.Request.Context(), "note upload failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, noteEntryJSON{Note: toNoteJSON(entry.Note), DownloadURL: entry.DownloadURL})
}
