//go:build unit
// +build unit

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/metrics"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken  = "admin-token"
	editorToken = "editor-token"
	staleToken  = "stale-token"
)

var (
	adminClaims = &users.Claims{
		UserID: "11111111-1111-4111-8111-111111111111",
		Email:  "admin@example.com",
		Role:   users.RoleAdmin,
	}
	editorClaims = &users.Claims{
		UserID: "22222222-2222-4222-8222-222222222222",
		Email:  "editor@example.com",
		Role:   users.RoleEditor,
	}
)

// testAPI is a router backed by mocked services
type testAPI struct {
	router        *gin.Engine
	metrics       *metrics.Metrics
	auth          *MockAuthService
	posts         *MockPostService
	projects      *MockProjectService
	leads         *MockLeadService
	comments      *MockCommentService
	uploads       *MockUploadService
	notifications *MockNotificationService
	auditLogs     *MockAuditLogService
	analytics     *MockAnalyticsService
}

func newTestAPI(t *testing.T, opts ...func(*RouterConfig)) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		metrics:       metrics.New(),
		auth:          new(MockAuthService),
		posts:         new(MockPostService),
		projects:      new(MockProjectService),
		leads:         new(MockLeadService),
		comments:      new(MockCommentService),
		uploads:       new(MockUploadService),
		notifications: new(MockNotificationService),
		auditLogs:     new(MockAuditLogService),
		analytics:     new(MockAnalyticsService),
	}

	api.auth.On("Authenticate", mock.Anything, adminToken).Return(adminClaims, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, editorToken).Return(editorClaims, nil).Maybe()
	api.auth.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, errs.Unauthorized("invalid or expired token")).Maybe()

	cfg := RouterConfig{
		Metrics:       api.metrics,
		MaxUploadSize: 1 << 20,
		DBPing:        func(context.Context) error { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	services := &Services{
		Auth:          api.auth,
		Posts:         api.posts,
		Projects:      api.projects,
		Leads:         api.leads,
		Comments:      api.comments,
		Uploads:       api.uploads,
		Notifications: api.notifications,
		AuditLogs:     api.auditLogs,
		Analytics:     api.analytics,
	}
	api.router = NewRouter(services, cfg, testutil.SetupTestLogger(t))
	return api
}

// do sends a request with an optional JSON body and bearer token
func (api *testAPI) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return api.serve(req)
}

func (api *testAPI) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func (api *testAPI) assertExpectations(t *testing.T) {
	t.Helper()
	api.posts.AssertExpectations(t)
	api.projects.AssertExpectations(t)
	api.leads.AssertExpectations(t)
	api.comments.AssertExpectations(t)
	api.uploads.AssertExpectations(t)
	api.notifications.AssertExpectations(t)
	api.auditLogs.AssertExpectations(t)
	api.analytics.AssertExpectations(t)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// listEnvelope mirrors ListResponse with raw data for decoding
type listEnvelope struct {
	Data   []map[string]interface{} `json:"data"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listEnvelope {
	t.Helper()
	var body listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
}
