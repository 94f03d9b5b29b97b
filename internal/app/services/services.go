package services

import (
	"reachout/internal/app/deps"
	drl "reachout/internal/core/domain/ratelimiter"
	"reachout/internal/core/services"
	getpublicform "reachout/internal/core/services/get_public_form"
	processsubmission "reachout/internal/core/services/process_submission"
	"reachout/internal/core/services/ratelimiting"
	resetmonthlycounts "reachout/internal/core/services/reset_monthly_counts"
)

type Services struct {
	ProcessSubmission  services.Service[processsubmission.Input, processsubmission.Result]
	GetPublicForm      services.Service[getpublicform.Input, getpublicform.Result]
	ResetMonthlyCounts services.Service[resetmonthlycounts.Input, resetmonthlycounts.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ProcessSubmission = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.IPRateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.RateLimitPerIP},
		processsubmission.New(
			deps.Logger,
			deps.FormRateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.RateLimitPerForm},
			deps.ProfileRepository,
			deps.RelaySender,
			deps.NotificationSender,
			deps.EventPublisher,
			deps.Config.MonthlySubmissionLimit,
			deps.Now,
		),
	)
	s.GetPublicForm = getpublicform.New(
		deps.Logger,
		deps.ProfileRepository,
	)
	s.ResetMonthlyCounts = resetmonthlycounts.New(
		deps.Logger,
		deps.ProfileRepository,
		deps.Now,
	)

	return s
}
