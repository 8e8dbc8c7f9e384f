// Package events defines domain events published to the message bus.
package events

import "context"

// Subjects, relative to the configured prefix
const (
	SubjectLeadCreated         = "lead.created"
	SubjectCommentCreated      = "comment.created"
	SubjectNotificationCreated = "notification.created"
	SubjectPostPublished       = "post.published"
)

// Publisher publishes JSON-encoded events
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close()
}
