package clients

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type notificationRestClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewNotificationRestClient(baseURL string, upstreamTimeout time.Duration, logger *zap.Logger) contracts.NotificationRestClient {
	return &notificationRestClient{
		baseURL: baseURL,
		http:    newUpstreamHTTPClient(upstreamTimeout),
		log:     logger,
	}
}

func (c *notificationRestClient) SendAppointmentEvent(ctx context.Context, request *requests.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/v1/notifications/appointment-event", c.baseURL)
	err := postJSON(ctx, c.http, url, "notification-service", request)
	if err != nil {
		c.log.Error("notificationRestClient.SendAppointmentEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
