package resetmonthlycounts

import (
	"context"
	"errors"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	ResetCount int64
}

type service struct {
	log      logging.Logger
	profiles profile.Repository
	now      func() time.Time
}

func New(log logging.Logger, profiles profile.Repository, now func() time.Time) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if profiles == nil {
		panic(e.NewNilArgumentError("profiles"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, profiles: profiles, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	resetCount, err := s.profiles.ResetDueMonthlyCounts(ctx, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not reset monthly submission counts.", logging.Entry("err", err))
		return result, err
	}

	if resetCount > 0 {
		s.log.Info(ctx, "Monthly submission counts reset.", logging.Entry("profileCount", resetCount))
	}
	return Result{ResetCount: resetCount}, nil
}
