package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockUploadService is a mock implementation of UploadService
type mockUploadService struct {
	result *models.UploadResult
	err    error
}

func (m *mockUploadService) Upload(ctx context.Context, actor *models.User, fileType, filename, contentType string, size int64, r io.Reader) (*models.UploadResult, error) {
	return m.result, m.err
}

func TestUploadHandler_Upload_RespondsOK(t *testing.T) {
	result := &models.UploadResult{
		Key:         "teacher-1_abc_1.pdf",
		URL:         "http://localhost:8080/api/media/teacher-1_abc_1.pdf",
		Size:        4,
		ContentType: "application/pdf",
	}
	h := NewUploadHandler(&mockUploadService{result: result}, zap.NewNop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("file_type", "pdf"))
	part, err := mw.CreateFormFile("file", "etude.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/files/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asTeacher(req))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content_type":"application/pdf"`)
}
