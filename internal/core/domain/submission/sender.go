package submission

import (
	"context"
	"reachout/internal/core/domain/profile"
)

// RelaySender delivers the submission to the form owner. The relay email
// must succeed for the submission to count against the owner's quota.
type RelaySender interface {
	SendSubmission(ctx context.Context, p profile.Profile, s Submission) error
}

// NotificationSender delivers quota notices. All of these are fire-and-forget:
// a failure never fails the submission that triggered it.
type NotificationSender interface {
	SendLimitWarning(ctx context.Context, p profile.Profile, count uint32, limit uint32) error
	SendLimitReached(ctx context.Context, p profile.Profile) error
	SendOperatorAlert(ctx context.Context, p profile.Profile) error
}
