//go:build unit
// +build unit

package projects

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProjectValidation(t *testing.T) {
	demo := "https://demo.example.com"
	badURL := "not a url"

	p := &Project{
		ID:           uuid.NewString(),
		Title:        "Portfolio",
		Slug:         "portfolio",
		Technologies: []string{"go", "react"},
		Status:       StatusPublished,
		DemoURL:      &demo,
	}
	assert.NoError(t, p.Validate())
	assert.True(t, p.IsPublished())

	p.RepoURL = &badURL
	assert.EqualError(t, p.Validate(), "repo_url must be a valid URL")

	p.RepoURL = nil
	p.Status = "archived"
	assert.EqualError(t, p.Validate(), "status must be one of [draft published]")
}

func TestProjectQueryValidation(t *testing.T) {
	q := &ProjectQuery{Status: "draft"}
	assert.NoError(t, q.Validate())

	q.Limit = 500
	assert.EqualError(t, q.Validate(), "limit must be at most 100")
}
