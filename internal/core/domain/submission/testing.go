package submission

import (
	"context"
	"fmt"
	"reachout/internal/core/domain/profile"
	"sync"
)

type SentSubmission struct {
	Profile    profile.Profile
	Submission Submission
}

type FakeRelaySender struct {
	Sent        []SentSubmission
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRelaySender() *FakeRelaySender {
	return &FakeRelaySender{}
}

func (s *FakeRelaySender) SendSubmission(ctx context.Context, p profile.Profile, sub Submission) error {
	if s.ReturnError {
		return fmt.Errorf("could not send submission to %s", p.DestinationEmail)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentSubmission{Profile: p, Submission: sub})
	return nil
}

func (s *FakeRelaySender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type LimitWarning struct {
	Profile profile.Profile
	Count   uint32
	Limit   uint32
}

type FakeNotificationSender struct {
	Warnings       []LimitWarning
	LimitNotices   []profile.Profile
	OperatorAlerts []profile.Profile
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeNotificationSender() *FakeNotificationSender {
	return &FakeNotificationSender{}
}

func (s *FakeNotificationSender) SendLimitWarning(
	ctx context.Context,
	p profile.Profile,
	count uint32,
	limit uint32,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send limit warning to %s", p.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Warnings = append(s.Warnings, LimitWarning{Profile: p, Count: count, Limit: limit})
	return nil
}

func (s *FakeNotificationSender) SendLimitReached(ctx context.Context, p profile.Profile) error {
	if s.ReturnError {
		return fmt.Errorf("could not send limit notice to %s", p.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.LimitNotices = append(s.LimitNotices, p)
	return nil
}

func (s *FakeNotificationSender) SendOperatorAlert(ctx context.Context, p profile.Profile) error {
	if s.ReturnError {
		return fmt.Errorf("could not send operator alert for %s", p.Username)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.OperatorAlerts = append(s.OperatorAlerts, p)
	return nil
}

type FakeEventPublisher struct {
	Published   []AcceptedEvent
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishAccepted(ctx context.Context, event AcceptedEvent) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish event for profile %d", event.ProfileID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}
