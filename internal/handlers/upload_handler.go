package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize bounds the parsed multipart form (20MB, matching the
// request size limit middleware)
const maxUploadSize = 20 << 20

// UploadService is the interface that wraps methods for upload business logic
type UploadService interface {
	// Upload validates and stores a blob, returning its key and URL.
	Upload(ctx context.Context, actor *models.User, fileType, filename, contentType string, size int64, r io.Reader) (*models.UploadResult, error)
}

// UploadHandler handles file upload HTTP requests
type UploadHandler struct {
	BaseHandler
	uploadService UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		uploadService: uploadService,
	}
}

// RegisterRoutes registers all upload handler routes.
// Note: This assumes the router is already scoped to /api and behind the auth middleware.
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/files/upload", h.Upload)
}

// Upload handles POST /files/upload
// @Summary Upload a file
// @Description Store a pdf, audio, or image blob and return its URL. Teachers and admins only. The blob is not linked to any catalog entry; set the returned URL on an entry in a separate update.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param file_type formData string true "Declared type: pdf, audio, or image"
// @Success 200 {object} models.UploadResult "Stored blob"
// @Failure 400 {object} map[string]string "Missing file, unknown file type, or content type not allowed"
// @Failure 403 {object} map[string]string "Role not allowed to upload"
// @Router /files/upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := h.RequestUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	fileType := r.FormValue("file_type")
	if fileType == "" {
		h.RespondError(w, http.StatusBadRequest, "file_type is required")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(
		r.Context(),
		user,
		fileType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}
