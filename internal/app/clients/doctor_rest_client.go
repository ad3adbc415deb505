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

type doctorRestClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewDoctorRestClient(baseURL string, upstreamTimeout time.Duration, logger *zap.Logger) contracts.DoctorRestClient {
	return &doctorRestClient{
		baseURL: baseURL,
		http:    newUpstreamHTTPClient(upstreamTimeout),
		log:     logger,
	}
}

func (c *doctorRestClient) FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor := new(responses.Doctor)
	url := fmt.Sprintf("%s/v1/doctors/%s", c.baseURL, doctorID)
	err := getJSON(ctx, c.http, url, "doctor-service", doctor)
	if err != nil {
		c.log.Error("doctorRestClient.FindDoctorByID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}

func (c *doctorRestClient) FindDoctorByUserID(ctx context.Context, userID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor := new(responses.Doctor)
	url := fmt.Sprintf("%s/v1/doctors/by-user/%s", c.baseURL, userID)
	err := getJSON(ctx, c.http, url, "doctor-service", doctor)
	if err != nil {
		c.log.Error("doctorRestClient.FindDoctorByUserID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}
