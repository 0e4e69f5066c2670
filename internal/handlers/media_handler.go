package handlers

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/abcmusiclibrary/backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MediaHandler serves stored blobs back out over HTTP
type MediaHandler struct {
	BaseHandler
	store  storage.ObjectStore
	signer *storage.URLSigner
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store storage.ObjectStore, signer *storage.URLSigner, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		BaseHandler: BaseHandler{Logger: logger},
		store:       store,
		signer:      signer,
	}
}

// RegisterRoutes registers all media handler routes.
// Note: This assumes the router is already scoped to /api. Media routes
// sit outside the auth middleware; signed URLs carry their own access check.
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Get("/media/{key}", h.Serve)
}

// Serve handles GET /media/{key}
// @Summary Serve a stored file
// @Description Stream a stored blob. When expires and signature query parameters are present they are verified; a stale or forged signature is rejected.
// @Tags media
// @Produce octet-stream
// @Param key path string true "Object key"
// @Param expires query int false "Signature expiry (unix seconds)"
// @Param signature query string false "HMAC signature"
// @Success 200 {file} file "File content"
// @Failure 403 {object} map[string]string "Invalid or expired signature"
// @Failure 404 {object} map[string]string "Object not found"
// @Router /media/{key} [get]
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	// A signed link must verify; an unsigned link serves the object as-is
	if signature := r.URL.Query().Get("signature"); signature != "" {
		expires, err := strconv.ParseInt(r.URL.Query().Get("expires"), 10, 64)
		if err != nil || !h.signer.Verify(key, expires, signature) {
			h.RespondError(w, http.StatusForbidden, "invalid or expired signature")
			return
		}
	}

	f, err := h.store.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			h.RespondError(w, http.StatusNotFound, "object not found")
			return
		}
		h.Logger.Error("failed to open object", zap.String("key", key), zap.Error(err))
		h.RespondError(w, http.StatusNotFound, "object not found")
		return
	}
	defer f.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(key)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	if _, err := io.Copy(w, f); err != nil {
		h.Logger.Error("failed to stream object", zap.String("key", key), zap.Error(err))
	}
}
