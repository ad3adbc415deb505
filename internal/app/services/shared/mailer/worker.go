package mailer

import (
	driver "carebook-service/internal/app/drivers/mailer"
	"carebook-service/internal/pkg/dto/requests"
	"context"
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the mailer queue and pushes each payload out over SMTP. Delivery is
// best effort: a failed send is logged and the message is dropped, never requeued.
type Worker struct {
	channel *amqp091.Channel
	client  *driver.SMTPClient
	queue   string
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewWorker(channel *amqp091.Channel, client *driver.SMTPClient, queue string, sendsPerSecond int, log *zap.Logger) *Worker {
	return &Worker{
		channel: channel,
		client:  client,
		queue:   queue,
		limiter: rate.NewLimiter(rate.Limit(sendsPerSecond), sendsPerSecond),
		log:     log,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	w.log.Info("mailer worker started", zap.String("queue", w.queue))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("mailer worker stopping")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				w.log.Warn("mailer worker delivery channel closed")
				return nil
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	// Always ack: a payload that cannot be sent now will not get better by requeueing.
	defer delivery.Ack(false)

	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	payload := new(requests.EmailPayload)
	if err := json.Unmarshal(delivery.Body, payload); err != nil {
		w.log.Error("mailer worker cannot unmarshal payload", zap.Error(err))
		return
	}

	if err := SendEmail(w.client, payload.ReceiverEmail, payload.Subject, payload.Body); err != nil {
		w.log.Error("mailer worker failed to send email",
			zap.String("receiver", payload.ReceiverEmail),
			zap.Error(err),
		)
		return
	}

	w.log.Info("mailer worker email sent", zap.String("receiver", payload.ReceiverEmail))
}
