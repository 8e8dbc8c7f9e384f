//go:build integration
// +build integration

package bootstrap

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.RestConfig {
	t.Helper()

	return &config.RestConfig{
		Port:        "8080",
		Environment: config.EnvTest,
		Database: config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
		Auth: config.AuthSettings{
			JWTSecret:     "0123456789abcdef0123456789abcdef",
			Issuer:        "portfolio-test",
			TokenTTL:      time.Hour,
			BcryptCost:    4,
			AdminEmail:    "admin@example.com",
			AdminPassword: "admin-password",
			AdminName:     "Admin",
		},
		Uploads: config.UploadSettings{
			Dir:              t.TempDir(),
			PublicPath:       "/uploads",
			MaxSizeBytes:     1 << 20,
			AllowedMimeTypes: config.DefaultAllowedMimeTypes,
		},
		Events: config.EventSettings{SubjectPrefix: "portfolio"},
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig(t)
	log := testutil.SetupTestLogger(t)
	ctx := context.Background()

	c, err := NewContainer(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	require.NoError(t, c.Ping(ctx))
	require.NotNil(t, c.Services)
	require.NotNil(t, c.Hub)
	require.NotNil(t, c.Metrics)

	require.NoError(t, c.EnsureAdmin(ctx, cfg.Auth))
	require.NoError(t, c.EnsureAdmin(ctx, cfg.Auth), "second run must be a no-op")

	result, err := c.Services.Auth.Login(ctx, &users.LoginInput{Email: "admin@example.com", Password: "admin-password"})
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, result.User.Role)

	count, err := c.Services.Posts.PublishScheduled(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, count)

	items, total, err := c.Services.Posts.List(ctx, &posts.PostQuery{}, false)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
