package mailer

import (
	"carebook-service/internal/app/contracts"
	driver "carebook-service/internal/app/drivers/mailer"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"

	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	channel *amqp091.Channel
	client  *driver.SMTPClient
	queue   string
}

func NewMailerService(client *driver.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, *amqp091.Channel, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, nil, err
	}

	// Declare the queue up front so publish and consume never race on a missing queue.
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, nil, err
	}

	return &mailerService{
		channel: channel,
		client:  client,
		queue:   queue,
	}, channel, nil
}

func (s *mailerService) QueueEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		return exceptions.ErrPublishMailerMessage(err)
	}
	return nil
}

// SendEmail delivers one message synchronously over SMTP. Used by the worker, not by
// request handlers.
func SendEmail(client *driver.SMTPClient, to, subject, body string) error {
	from := client.EmailSender
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, from, subject, body))
	addr := fmt.Sprintf("%s:%d", client.Host, client.Port)
	err := smtp.SendMail(addr, client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, client.Host)
	}
	return nil
}
