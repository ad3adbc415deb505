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

type userRestClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewUserRestClient(baseURL string, upstreamTimeout time.Duration, logger *zap.Logger) contracts.UserRestClient {
	return &userRestClient{
		baseURL: baseURL,
		http:    newUpstreamHTTPClient(upstreamTimeout),
		log:     logger,
	}
}

func (c *userRestClient) FindUserByID(ctx context.Context, userID string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user := new(responses.UserProfile)
	url := fmt.Sprintf("%s/v1/users/%s", c.baseURL, userID)
	err := getJSON(ctx, c.http, url, "user-service", user)
	if err != nil {
		c.log.Error("userRestClient.FindUserByID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return user, nil
}
