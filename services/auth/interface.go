package auth

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type AuthService interface {
	Register(ctx context.Context, data models.RegistrationData) models.Result[models.UserProfile]
	Login(ctx context.Context, creds models.Credentials) models.Result[models.AuthPayload]
	Logout(ctx context.Context) models.Result[struct{}]
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	API httpclient.API
}

func NewAuthService(api httpclient.API) *DefaultAuthService {
	return &DefaultAuthService{API: api}
}
