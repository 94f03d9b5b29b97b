package submissionevents

import (
	"context"
	e "reachout/internal/core/domain/errors"
	"reachout/internal/core/domain/logging"
	"reachout/internal/core/domain/submission"
	"reachout/internal/rabbitmq"
	"reachout/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishAccepted(ctx context.Context, event submission.AcceptedEvent) error {
	message := schema.SubmissionAccepted{
		ProfileID:    int64(event.ProfileID),
		Slug:         event.Slug,
		MonthlyCount: event.MonthlyCount,
		OccurredAt:   event.OccurredAt,
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.log.Error(ctx, "Could not publish AMQP message.", logging.Entry("err", err))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("profileID", event.ProfileID),
	)
	return nil
}
