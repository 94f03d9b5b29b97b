package email

import (
	"context"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/profile"
	"reachout/internal/core/domain/submission"
)

// ConsoleSender logs emails instead of sending them. Used in local
// development and test mode, where no SES credentials are configured.
type ConsoleSender struct {
	log logging.Logger
}

func NewConsoleSender(log logging.Logger) *ConsoleSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &ConsoleSender{log: log}
}

func (s *ConsoleSender) SendSubmission(ctx context.Context, p profile.Profile, sub submission.Submission) error {
	s.log.Info(
		ctx,
		"Submission email (not sent, console mode).",
		logging.Entry("to", p.DestinationEmail),
		logging.Entry("replyTo", sub.SenderEmail),
		logging.Entry("senderName", sub.SenderName),
	)
	return nil
}

func (s *ConsoleSender) SendLimitWarning(ctx context.Context, p profile.Profile, count uint32, limit uint32) error {
	s.log.Info(
		ctx,
		"Limit warning email (not sent, console mode).",
		logging.Entry("to", p.Email),
		logging.Entry("count", count),
		logging.Entry("limit", limit),
	)
	return nil
}

func (s *ConsoleSender) SendLimitReached(ctx context.Context, p profile.Profile) error {
	s.log.Info(ctx, "Limit reached email (not sent, console mode).", logging.Entry("to", p.Email))
	return nil
}

func (s *ConsoleSender) SendOperatorAlert(ctx context.Context, p profile.Profile) error {
	s.log.Info(ctx, "Operator alert email (not sent, console mode).", logging.Entry("username", p.Username))
	return nil
}
