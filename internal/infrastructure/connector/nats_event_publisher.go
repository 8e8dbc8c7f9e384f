package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
)

const (
	publishAttempts   = 3
	publishRetryDelay = 100 * time.Millisecond
)

// natsEventPublisher publishes JSON events to NATS core subjects
type natsEventPublisher struct {
	nc     *nats.Conn
	prefix string
	logger logger.Logger
}

// NewNatsEventPublisher connects to url and returns a publisher writing to <prefix>.<subject>
func NewNatsEventPublisher(url, prefix string, logger logger.Logger) (events.Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("portfolio-api"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.With("error", err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.With("url", c.ConnectedUrl()).Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &natsEventPublisher{nc: nc, prefix: prefix, logger: logger}, nil
}

// Subject joins the prefix and subject with a dot
func Subject(prefix, subject string) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}

func (p *natsEventPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	full := Subject(p.prefix, subject)
	return retry.Do(
		func() error {
			if err := ctx.Err(); err != nil {
				return retry.Unrecoverable(fmt.Errorf("context cancelled before publish: %w", err))
			}
			return p.nc.Publish(full, data)
		},
		retry.Context(ctx),
		retry.Attempts(publishAttempts),
		retry.Delay(publishRetryDelay),
		retry.LastErrorOnly(true),
	)
}

func (p *natsEventPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}

// noopEventPublisher drops events when no broker is configured
type noopEventPublisher struct{}

// NewNoopEventPublisher returns a publisher that discards events
func NewNoopEventPublisher() events.Publisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (noopEventPublisher) Close() {}
