package session

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	redisRepository contracts.RedisRepository
	internalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		redisRepository: redisRepository,
		internalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	sessionID := uuid.NewString()
	session.SessionID = sessionID

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	ttl := time.Duration(s.internalConfig.App.SessionTTLInHour) * time.Hour
	err = s.redisRepository.Set(ctx, sessionID, string(sessionJSON), ttl)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redisRepository.Delete(ctx, sessionID)
}
