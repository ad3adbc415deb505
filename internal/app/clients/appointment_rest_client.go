package clients

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type appointmentRestClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewAppointmentRestClient(baseURL string, upstreamTimeout time.Duration, logger *zap.Logger) contracts.AppointmentRestClient {
	return &appointmentRestClient{
		baseURL: baseURL,
		http:    newUpstreamHTTPClient(upstreamTimeout),
		log:     logger,
	}
}

func (c *appointmentRestClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment := new(responses.Appointment)
	url := fmt.Sprintf("%s/v1/appointments/internal/%s", c.baseURL, appointmentID)
	err := getJSON(ctx, c.http, url, "appointment-service", appointment)
	if err != nil {
		c.log.Error("appointmentRestClient.FindAppointmentByID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}
