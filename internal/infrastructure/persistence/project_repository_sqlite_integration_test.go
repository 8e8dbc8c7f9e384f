//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(slug string, order int, featured bool, technologies ...string) *projects.Project {
	now := time.Now().UTC()
	return &projects.Project{
		ID:           uuid.NewString(),
		Title:        "Project " + slug,
		Slug:         slug,
		Technologies: technologies,
		Featured:     featured,
		Status:       projects.StatusPublished,
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestProjectSqliteRepository_ListOrderAndFilters(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	second := newTestProject("second", 2, false, "go")
	first := newTestProject("first", 1, true, "go", "react")
	third := newTestProject("third", 3, true, "python")
	for _, p := range []*projects.Project{second, first, third} {
		require.NoError(t, tc.ProjectRepo.Create(ctx, p))
	}

	list, total, err := tc.ProjectRepo.List(ctx, &projects.ProjectQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{list[0].Slug, list[1].Slug, list[2].Slug})

	featured := true
	list, _, err = tc.ProjectRepo.List(ctx, &projects.ProjectQuery{Featured: &featured, Technology: "go"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestProjectSqliteRepository_UpdateDelete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	p := newTestProject("portfolio", 0, false)
	require.NoError(t, tc.ProjectRepo.Create(ctx, p))

	p.Summary = "Updated"
	require.NoError(t, tc.ProjectRepo.Update(ctx, p))

	fetched, err := tc.ProjectRepo.GetBySlug(ctx, "portfolio")
	require.NoError(t, err)
	assert.Equal(t, "Updated", fetched.Summary)

	require.NoError(t, tc.ProjectRepo.DeleteByID(ctx, p.ID))
	_, err = tc.ProjectRepo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
