package profile

import (
	"context"
	c "reachout/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	Username         string
	Slug             c.Slug
	Email            c.Email
	FormTitle        string
	IntroMessage     c.Optional[string]
	SubmitLabel      string
	ThankyouMessage  string
	DestinationEmail c.Email
	PrivacyURL       c.Optional[string]
	FormPrimaryColor string
	FormBgColor      string
	MonthlyResetAt   time.Time
	IsLive           bool
	CreatedAt        time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Profile, error)
	GetBySlug(ctx context.Context, slug c.Slug) (Profile, error)
	// IncrementMonthlySubmissionCount must be atomic against concurrent
	// increments for the same profile.
	IncrementMonthlySubmissionCount(ctx context.Context, id ID) error
	GetMonthlySubmissionCount(ctx context.Context, id ID) (uint32, error)
	// ResetDueMonthlyCounts zeroes monthly counters whose reset time has
	// passed and advances the reset time to the start of the next month.
	// Returns the number of profiles reset.
	ResetDueMonthlyCounts(ctx context.Context, now time.Time) (int64, error)
}
