//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectHandler_List(t *testing.T) {
	api := newTestAPI(t)
	api.projects.On("List", mock.Anything, mock.MatchedBy(func(q *projects.ProjectQuery) bool {
		return q.Featured != nil && *q.Featured && q.Technology == "go"
	}), false).Return([]*projects.Project{{ID: "p1", Title: "CLI", Slug: "cli"}}, int64(1), nil)

	w := api.do(t, http.MethodGet, "/api/projects?featured=true&technology=go", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeList(t, w)
	assert.Equal(t, int64(1), body.Total)
	api.assertExpectations(t)
}

func TestProjectHandler_CRUD(t *testing.T) {
	api := newTestAPI(t)
	project := &projects.Project{ID: "p1", Title: "CLI", Slug: "cli", Status: projects.StatusDraft}

	api.projects.On("Create", mock.Anything, mock.MatchedBy(func(in *projects.ProjectInput) bool {
		return in.Title == "CLI" && len(in.Technologies) == 1
	})).Return(project, nil)
	api.projects.On("GetByID", mock.Anything, "p1", true).Return(project, nil)
	api.projects.On("GetBySlug", mock.Anything, "cli").Return(nil, errs.NotFound("project", "cli"))
	api.projects.On("Update", mock.Anything, "p1", mock.Anything).Return(project, nil)
	api.projects.On("Delete", mock.Anything, "p1").Return(nil)

	w := api.do(t, http.MethodPost, "/api/projects", map[string]interface{}{"title": "CLI", "technologies": []string{"go"}}, editorToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/api/projects/p1", nil, editorToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/projects/slug/cli", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPut, "/api/projects/p1", map[string]bool{"featured": true}, editorToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodDelete, "/api/projects/p1", nil, editorToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	api.assertExpectations(t)
}

func TestLeadHandler_Submit(t *testing.T) {
	payload := map[string]string{"name": "Jane", "email": "jane@example.com", "message": "Let's talk"}

	t.Run("stored", func(t *testing.T) {
		api := newTestAPI(t)
		api.leads.On("Submit", mock.Anything, mock.MatchedBy(func(in *leads.LeadInput) bool {
			return in.Email == "jane@example.com"
		}), mock.Anything, mock.Anything).Return(&leads.Lead{ID: "l1", Status: leads.StatusNew}, nil)

		w := api.do(t, http.MethodPost, "/api/leads", payload, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"new"`)
		api.assertExpectations(t)
	})

	t.Run("honeypot is acknowledged", func(t *testing.T) {
		api := newTestAPI(t)
		api.leads.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		w := api.do(t, http.MethodPost, "/api/leads", map[string]string{"name": "Bot", "email": "bot@example.com", "message": "buy", "website": "http://spam"}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"status":"received"}`, w.Body.String())
		api.assertExpectations(t)
	})

	t.Run("invalid", func(t *testing.T) {
		api := newTestAPI(t)
		api.leads.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.Invalid("message", "message is required"))

		w := api.do(t, http.MethodPost, "/api/leads", map[string]string{"name": "Jane", "email": "jane@example.com"}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "message is required", decodeError(t, w).Message)
	})
}

func TestLeadHandler_AdminOperations(t *testing.T) {
	api := newTestAPI(t)
	lead := &leads.Lead{ID: "l1", Status: leads.StatusContacted}

	api.leads.On("List", mock.Anything, mock.MatchedBy(func(q *leads.LeadQuery) bool {
		return q.Status == leads.StatusNew && q.Search == "acme"
	})).Return([]*leads.Lead{lead}, int64(1), nil)
	api.leads.On("GetByID", mock.Anything, "l1").Return(lead, nil)
	api.leads.On("Update", mock.Anything, "l1", mock.MatchedBy(func(in *leads.LeadUpdate) bool {
		return in.Status != nil && *in.Status == leads.StatusContacted && in.Notes == nil
	})).Return(lead, nil)
	api.leads.On("Delete", mock.Anything, "l1").Return(nil)

	w := api.do(t, http.MethodGet, "/api/leads?status=new&search=acme", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/leads/l1", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPatch, "/api/leads/l1", map[string]string{"status": "contacted"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodDelete, "/api/leads/l1", nil, adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	api.assertExpectations(t)
}

func TestCommentHandler_Submit(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"pending", nil, http.StatusCreated},
		{"unpublished post", errs.NotFound("post", "p1"), http.StatusNotFound},
		{"foreign parent", errs.Invalid("parent_id", "parent comment belongs to another post"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			call := api.comments.On("Submit", mock.Anything, mock.MatchedBy(func(in *comments.CommentInput) bool {
				return in.AuthorName == "Sam"
			}), mock.Anything)
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&comments.Comment{ID: "c1", Status: comments.StatusPending}, nil)
			}

			w := api.do(t, http.MethodPost, "/api/comments", map[string]string{
				"post_id": "33333333-3333-4333-8333-333333333333", "author_name": "Sam",
				"author_email": "sam@example.com", "content": "Nice post",
			}, "")

			assert.Equal(t, tt.status, w.Code)
			api.assertExpectations(t)
		})
	}
}

func TestCommentHandler_List(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		api := newTestAPI(t)
		api.comments.On("List", mock.Anything, mock.MatchedBy(func(q *comments.CommentQuery) bool {
			return q.PostID == "p1"
		}), false).Return([]*comments.Comment{}, int64(0), nil)

		w := api.do(t, http.MethodGet, "/api/comments?post_id=p1", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		api.assertExpectations(t)
	})

	t.Run("anonymous without post", func(t *testing.T) {
		api := newTestAPI(t)
		api.comments.On("List", mock.Anything, mock.Anything, false).
			Return(nil, int64(0), errs.Invalid("post_id", "post_id is required"))

		w := api.do(t, http.MethodGet, "/api/comments", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "post_id is required", decodeError(t, w).Message)
	})

	t.Run("moderator", func(t *testing.T) {
		api := newTestAPI(t)
		api.comments.On("List", mock.Anything, mock.MatchedBy(func(q *comments.CommentQuery) bool {
			return q.Status == comments.StatusPending
		}), true).Return([]*comments.Comment{{ID: "c1"}}, int64(1), nil)

		w := api.do(t, http.MethodGet, "/api/comments?status=pending", nil, editorToken)

		assert.Equal(t, http.StatusOK, w.Code)
		api.assertExpectations(t)
	})
}

func TestCommentHandler_Moderation(t *testing.T) {
	api := newTestAPI(t)
	api.comments.On("UpdateStatus", mock.Anything, "c1", &comments.StatusUpdate{Status: comments.StatusApproved}).
		Return(&comments.Comment{ID: "c1", Status: comments.StatusApproved}, nil)
	api.comments.On("Delete", mock.Anything, "c2").Return(errs.NotFound("comment", "c2"))

	w := api.do(t, http.MethodPatch, "/api/comments/c1/status", map[string]string{"status": "approved"}, editorToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodDelete, "/api/comments/c2", nil, editorToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	api.assertExpectations(t)
}
