//go:build unit
// +build unit

package auditlogs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActorContext(t *testing.T) {
	assert.Nil(t, ActorFromContext(context.Background()))

	actor := &Actor{UserID: uuid.NewString(), IPAddress: "10.0.0.1"}
	ctx := WithActor(context.Background(), actor)
	assert.Same(t, actor, ActorFromContext(ctx))
}

func TestAuditLogValidation(t *testing.T) {
	entry := &AuditLog{ID: uuid.NewString(), Action: ActionPostCreated, ResourceType: ResourcePost}
	assert.NoError(t, entry.Validate())

	entry.Action = ""
	assert.EqualError(t, entry.Validate(), "action is required")
}
