package profile

import (
	"context"
	c "reachout/internal/core/domain/common"
	"sync"
	"time"
)

type FakeRepository struct {
	profiles map[ID]*Profile
	nextID   ID

	GetBySlugError error
	IncrementError error
	GetCountError  error
	ResetError     error
	IncrementedIDs []ID

	lock sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{profiles: make(map[ID]*Profile), nextID: 1}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (Profile, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.profiles {
		if p.Slug == input.Slug {
			return Profile{}, &SlugAlreadyExistsError{Slug: input.Slug}
		}
	}
	p := &Profile{
		ID:               r.nextID,
		Username:         input.Username,
		Slug:             input.Slug,
		Email:            input.Email,
		FormTitle:        input.FormTitle,
		IntroMessage:     input.IntroMessage,
		SubmitLabel:      input.SubmitLabel,
		ThankyouMessage:  input.ThankyouMessage,
		DestinationEmail: input.DestinationEmail,
		PrivacyURL:       input.PrivacyURL,
		FormPrimaryColor: input.FormPrimaryColor,
		FormBgColor:      input.FormBgColor,
		MonthlyResetAt:   input.MonthlyResetAt,
		IsLive:           input.IsLive,
		CreatedAt:        input.CreatedAt,
		UpdatedAt:        input.CreatedAt,
	}
	r.profiles[p.ID] = p
	r.nextID++
	return *p, nil
}

func (r *FakeRepository) GetBySlug(ctx context.Context, slug c.Slug) (Profile, error) {
	if r.GetBySlugError != nil {
		return Profile{}, r.GetBySlugError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.profiles {
		if p.Slug == slug {
			return *p, nil
		}
	}
	return Profile{}, ErrProfileDoesNotExist
}

func (r *FakeRepository) IncrementMonthlySubmissionCount(ctx context.Context, id ID) error {
	if r.IncrementError != nil {
		return r.IncrementError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return ErrProfileDoesNotExist
	}
	p.MonthlySubmissionCount++
	p.SubmissionCount++
	r.IncrementedIDs = append(r.IncrementedIDs, id)
	return nil
}

func (r *FakeRepository) GetMonthlySubmissionCount(ctx context.Context, id ID) (uint32, error) {
	if r.GetCountError != nil {
		return 0, r.GetCountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return 0, ErrProfileDoesNotExist
	}
	return p.MonthlySubmissionCount, nil
}

func (r *FakeRepository) ResetDueMonthlyCounts(ctx context.Context, now time.Time) (int64, error) {
	if r.ResetError != nil {
		return 0, r.ResetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count int64
	for _, p := range r.profiles {
		if !p.MonthlyResetAt.After(now) {
			p.MonthlySubmissionCount = 0
			p.MonthlyResetAt = NextMonthlyReset(now)
			count++
		}
	}
	return count, nil
}

// SetMonthlyCount forces the stored monthly counter, for quota edge case tests.
func (r *FakeRepository) SetMonthlyCount(id ID, count uint32) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if p, ok := r.profiles[id]; ok {
		p.MonthlySubmissionCount = count
	}
}

func (r *FakeRepository) IncrementCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.IncrementedIDs)
}
