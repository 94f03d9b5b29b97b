package processsubmission

import (
	"context"
	"encoding/json"
	"errors"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/domain/submission"
	"reachout/internal/core/services"
	"time"
)

// Input carries the raw request body: decoding is part of the admission
// pipeline and happens only after the IP-level rate limit check, which the
// rate-limiting decorator wrapping this service performs.
type Input struct {
	IPKey string
	Body  []byte
}

func (i Input) GetRateLimitKey() string {
	return "submit::ip::" + i.IPKey
}

type Result struct {
	Profile      profile.Profile
	MonthlyCount uint32
}

type service struct {
	log           logging.Logger
	rateLimiter   ratelimiter.RateLimiter
	formRateLimit ratelimiter.Limit
	profiles      profile.Repository
	relaySender   submission.RelaySender
	notifications submission.NotificationSender
	events        submission.EventPublisher
	monthlyLimit  uint32
	now           func() time.Time
}

func New(
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	formRateLimit ratelimiter.Limit,
	profiles profile.Repository,
	relaySender submission.RelaySender,
	notifications submission.NotificationSender,
	events submission.EventPublisher,
	monthlyLimit uint32,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	if profiles == nil {
		panic(e.NewNilArgumentError("profiles"))
	}
	if relaySender == nil {
		panic(e.NewNilArgumentError("relaySender"))
	}
	if notifications == nil {
		panic(e.NewNilArgumentError("notifications"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	if monthlyLimit == 0 {
		monthlyLimit = profile.DefaultMonthlyLimit
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		rateLimiter:   rateLimiter,
		formRateLimit: formRateLimit,
		profiles:      profiles,
		relaySender:   relaySender,
		notifications: notifications,
		events:        events,
		monthlyLimit:  monthlyLimit,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	var payload submission.Payload
	if err := json.Unmarshal(input.Body, &payload); err != nil {
		return result, submission.ErrMalformedPayload
	}

	validation := submission.Validate(payload)
	if !validation.OK {
		if validation.IsSpam() {
			s.log.Info(
				ctx,
				"Submission classified as spam.",
				logging.Entry("reason", validation.Reason),
				logging.Entry("ipKey", input.IPKey),
			)
			return result, submission.ErrSpamSubmission
		}
		s.log.Info(ctx, "Submission failed validation.", logging.Entry("reason", validation.Reason))
		return result, submission.ErrInvalidSubmission
	}
	sub := submission.NewSubmission(payload)

	formRate := s.rateLimiter.CheckLimit(ctx, "submit::form::"+string(sub.Username), s.formRateLimit)
	if !formRate.IsAllowed {
		s.log.Warning(ctx, "Form rate limit exceeded.", logging.Entry("username", sub.Username))
		return result, ratelimiter.ErrRateLimitExceeded
	}

	p, err := s.profiles.GetBySlug(ctx, sub.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, profile.ErrProfileDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not load profile.", logging.Entry("slug", sub.Username), logging.Entry("err", err))
		return result, err
	}

	if !p.IsOpen() {
		return result, profile.ErrFormNotAvailable
	}
	if p.IsAtMonthlyLimit(s.monthlyLimit) {
		return result, profile.ErrMonthlyLimitReached
	}

	// The relay email must succeed before the quota counter moves: a failed
	// delivery never consumes quota.
	if err := s.relaySender.SendSubmission(ctx, p, sub); err != nil {
		s.log.Error(
			ctx,
			"Could not send submission email.",
			logging.Entry("profileID", p.ID),
			logging.Entry("err", err),
		)
		return result, submission.ErrDeliveryFailed
	}

	if err := s.profiles.IncrementMonthlySubmissionCount(ctx, p.ID); err != nil {
		// The message is already delivered; surface success and leave the
		// counter to drift by one.
		s.log.Error(
			ctx,
			"Could not increment monthly submission count.",
			logging.Entry("profileID", p.ID),
			logging.Entry("err", err),
		)
		return Result{Profile: p, MonthlyCount: p.MonthlySubmissionCount}, nil
	}

	newCount, err := s.profiles.GetMonthlySubmissionCount(ctx, p.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not re-read monthly submission count.",
			logging.Entry("profileID", p.ID),
			logging.Entry("err", err),
		)
		return Result{Profile: p, MonthlyCount: p.MonthlySubmissionCount + 1}, nil
	}

	s.notifyThresholds(ctx, p, newCount)
	s.publishAccepted(ctx, p, newCount)

	return Result{Profile: p, MonthlyCount: newCount}, nil
}

// notifyThresholds fires quota notices based on the freshly read count.
// Failures are logged and swallowed: the submission already succeeded.
func (s *service) notifyThresholds(ctx context.Context, p profile.Profile, newCount uint32) {
	warnAt := profile.NearLimitThreshold(s.monthlyLimit)
	// The second branch re-fires on the value right after the boundary in
	// case a concurrent increment skipped the exact boundary value.
	if newCount == warnAt || (newCount > warnAt && newCount == warnAt+1) {
		if err := s.notifications.SendLimitWarning(ctx, p, newCount, s.monthlyLimit); err != nil {
			s.log.Error(
				ctx,
				"Could not send limit warning.",
				logging.Entry("profileID", p.ID),
				logging.Entry("err", err),
			)
		}
	}

	if newCount >= s.monthlyLimit {
		if err := s.notifications.SendLimitReached(ctx, p); err != nil {
			s.log.Error(
				ctx,
				"Could not send limit reached notice.",
				logging.Entry("profileID", p.ID),
				logging.Entry("err", err),
			)
		}
		if err := s.notifications.SendOperatorAlert(ctx, p); err != nil {
			s.log.Error(
				ctx,
				"Could not send operator alert.",
				logging.Entry("profileID", p.ID),
				logging.Entry("err", err),
			)
		}
	}
}

func (s *service) publishAccepted(ctx context.Context, p profile.Profile, newCount uint32) {
	event := submission.AcceptedEvent{
		ProfileID:    p.ID,
		Slug:         string(p.Slug),
		MonthlyCount: newCount,
		OccurredAt:   s.now(),
	}
	if err := s.events.PublishAccepted(ctx, event); err != nil {
		s.log.Error(
			ctx,
			"Could not publish submission event.",
			logging.Entry("profileID", p.ID),
			logging.Entry("err", err),
		)
	}
}
