//go:build unit
// +build unit

package v1

import (
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, fileName string, content []byte, token string) *http.Request {
	t.Helper()

	body, contentType := testutil.CreateMultipartBody(t, "file", fileName, content)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadHandler_Upload_Success(t *testing.T) {
	api := newTestAPI(t)
	upload := &uploads.Upload{ID: "u1", FileName: "2abc-logo.png", OriginalName: "Logo.PNG", URL: "/uploads/2abc-logo.png"}

	api.uploads.On("Upload", mock.Anything, mock.MatchedBy(func(file *multipart.FileHeader) bool {
		return file.Filename == "Logo.PNG" && file.Size == int64(len(testutil.PNGHeader))
	}), editorClaims.UserID).Return(upload, nil)

	w := api.serve(uploadRequest(t, "Logo.PNG", testutil.PNGHeader, editorToken))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "/uploads/2abc-logo.png")
	api.assertExpectations(t)
}

func TestUploadHandler_Upload_Rejected(t *testing.T) {
	api := newTestAPI(t)
	api.uploads.On("Upload", mock.Anything, mock.Anything, adminClaims.UserID).
		Return(nil, errs.Invalid("file", "file type text/plain is not allowed"))

	w := api.serve(uploadRequest(t, "notes.txt", []byte("plain text"), adminToken))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "file type text/plain is not allowed", decodeError(t, w).Message)
	api.assertExpectations(t)
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", strings.NewReader("not a form"))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Authorization", "Bearer "+editorToken)
	w := api.serve(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	api.uploads.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandler_ListAndDelete(t *testing.T) {
	api := newTestAPI(t)
	api.uploads.On("List", mock.Anything, mock.MatchedBy(func(q *uploads.UploadQuery) bool {
		return q.MimeType == "image/png" && q.Limit == 50
	})).Return([]*uploads.Upload{{ID: "u1"}}, int64(1), nil)
	api.uploads.On("Delete", mock.Anything, "u1").Return(nil)

	w := api.do(t, http.MethodGet, "/api/uploads?mime_type=image/png&limit=50", nil, editorToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, decodeList(t, w).Limit)

	w = api.do(t, http.MethodDelete, "/api/uploads/u1", nil, editorToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	api.assertExpectations(t)
}

func TestRoutes_StaticUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir, "hello.txt", "hi there"))

	api := newTestAPI(t, func(cfg *RouterConfig) {
		cfg.UploadDir = dir
		cfg.UploadPath = "/uploads"
	})

	w := api.do(t, http.MethodGet, "/uploads/hello.txt", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi there", w.Body.String())
}
