package getpublicform

import (
	"context"
	"errors"
	c "reachout/internal/core/domain/common"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/services"
)

type Input struct {
	Slug c.Slug
}

type Result struct {
	Profile profile.Profile
}

type service struct {
	log      logging.Logger
	profiles profile.Repository
}

func New(log logging.Logger, profiles profile.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if profiles == nil {
		panic(e.NewNilArgumentError("profiles"))
	}
	return &service{log: log, profiles: profiles}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.profiles.GetBySlug(ctx, input.Slug)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, profile.ErrProfileDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not load profile.", logging.Entry("slug", input.Slug), logging.Entry("err", err))
		return result, err
	}

	// A closed form is indistinguishable from a missing one.
	if !p.IsOpen() {
		return result, profile.ErrProfileDoesNotExist
	}

	return Result{Profile: p}, nil
}
