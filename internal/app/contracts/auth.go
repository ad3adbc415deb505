package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	LogoutUser(ctx context.Context, sessionID string) error
}

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) (sessionID string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
