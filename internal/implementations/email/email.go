package email

import (
	"context"
	"fmt"
	"math"
	"strings"

	"reachout/internal/core/domain/profile"
	"reachout/internal/core/domain/submission"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Sender delivers relay and quota emails through Amazon SES. It implements
// both submission.RelaySender and submission.NotificationSender.
type Sender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender        string
	operatorEmail string
	publicBaseURL string
}

func NewSender(awsConfig aws.Config, sender string, operatorEmail string, publicBaseURL string) *Sender {
	return &Sender{
		ses:           ses.NewFromConfig(awsConfig),
		sender:        sender,
		operatorEmail: operatorEmail,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *Sender) SendSubmission(ctx context.Context, p profile.Profile, sub submission.Submission) error {
	body := strings.Join([]string{
		fmt.Sprintf("You received a new message via your ReachOut form (%s).", s.formURL(p)),
		"",
		fmt.Sprintf("From: %s <%s>", sub.SenderName, sub.SenderEmail),
		"",
		sub.Message,
		"",
		"---",
		"Reply directly to this email to respond.",
		"ReachOut does not store this message. Only you have it.",
	}, "\n")

	return s.send(
		ctx,
		string(p.DestinationEmail),
		string(sub.SenderEmail),
		fmt.Sprintf("New message via ReachOut — %s", p.FormTitle),
		body,
	)
}

func (s *Sender) SendLimitWarning(ctx context.Context, p profile.Profile, count uint32, limit uint32) error {
	percent := int(math.Round(float64(count) / float64(limit) * 100))
	body := strings.Join([]string{
		"Hi,",
		"",
		fmt.Sprintf(
			"Your ReachOut form (%s) has received %d of %d messages this month — you're at %d%%.",
			s.formURL(p), count, limit, percent,
		),
		"",
		"What would you pay to keep receiving messages without limits? " +
			"Just reply and tell us — we're figuring out pricing and your answer shapes it.",
		"",
		"— The ReachOut team",
	}, "\n")

	return s.send(ctx, string(p.Email), "", "You're almost at your ReachOut limit", body)
}

func (s *Sender) SendLimitReached(ctx context.Context, p profile.Profile) error {
	body := strings.Join([]string{
		"Hi,",
		"",
		fmt.Sprintf(
			"Your ReachOut form (%s) has reached its monthly message limit. "+
				"New submissions are temporarily blocked until next month.",
			s.formURL(p),
		),
		"",
		"I wanted to reach out personally. If this limit is hurting you, " +
			"reply to this email — let's figure something out.",
		"",
		"— The ReachOut team",
	}, "\n")

	return s.send(ctx, string(p.Email), "", "Your ReachOut form has reached its limit", body)
}

func (s *Sender) SendOperatorAlert(ctx context.Context, p profile.Profile) error {
	return s.send(
		ctx,
		s.operatorEmail,
		"",
		fmt.Sprintf("[ReachOut] Limit hit: %s", p.Username),
		fmt.Sprintf(
			"User %s (username: %s) has hit their monthly limit. Follow up personally.",
			p.Email, p.Username,
		),
	)
}

func (s *Sender) send(ctx context.Context, to string, replyTo string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	}
	if replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}

	_, err := s.ses.SendEmail(ctx, input)
	return err
}

func (s *Sender) formURL(p profile.Profile) string {
	return fmt.Sprintf("%s/to/%s", s.publicBaseURL, p.Slug)
}
