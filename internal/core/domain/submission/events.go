package submission

import (
	"context"
	"reachout/internal/core/domain/profile"
	"time"
)

// AcceptedEvent is emitted after a submission has been relayed and counted.
type AcceptedEvent struct {
	ProfileID    profile.ID
	Slug         string
	MonthlyCount uint32
	OccurredAt   time.Time
}

type EventPublisher interface {
	PublishAccepted(ctx context.Context, event AcceptedEvent) error
}

// NopEventPublisher is used when no message broker is configured.
type NopEventPublisher struct{}

func NewNopEventPublisher() *NopEventPublisher {
	return &NopEventPublisher{}
}

func (p *NopEventPublisher) PublishAccepted(ctx context.Context, event AcceptedEvent) error {
	return nil
}
