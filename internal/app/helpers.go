package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"
)

// maxSlugAttempts bounds the numeric suffixes tried for a derived slug
const maxSlugAttempts = 100

// slugExistsFunc reports whether a record other than excludeID uses slug
type slugExistsFunc func(ctx context.Context, slug, excludeID string) (bool, error)

// resolveSlug returns explicit when it is free, or a unique slug derived from title
// with -2, -3, ... appended on collision.
func resolveSlug(ctx context.Context, explicit, title, excludeID string, exists slugExistsFunc) (string, error) {
	if explicit != "" {
		taken, err := exists(ctx, explicit, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", errs.Conflict("slug %q is already in use", explicit)
		}
		return explicit, nil
	}

	base := strutil.Slugify(title)
	if base == "" {
		base = "untitled"
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			suffix := fmt.Sprintf("-%d", i)
			candidate = strings.TrimRight(strutil.Truncate(base, strutil.MaxSlugLength-len(suffix)), "-") + suffix
		}
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errs.Conflict("no free slug derived from %q", title)
}

// publishEvent publishes a domain event; failures are logged only
func publishEvent(ctx context.Context, publisher events.Publisher, log logger.Logger, subject string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, subject, payload); err != nil {
		log.Warn("Failed to publish event ", subject, ": ", err)
	}
}

func stringPtr(s string) *string {
	return &s
}
