package user

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) models.Result[models.UserProfile]
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) models.Result[models.UserProfile]
	DeleteProfile(ctx context.Context, userID string) models.Result[struct{}]
	UpdatePassword(ctx context.Context, req models.PasswordUpdate) models.Result[struct{}]
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	API httpclient.API
}

func NewUserService(api httpclient.API) *DefaultUserService {
	return &DefaultUserService{API: api}
}

// ProfileUpdate is a partial profile edit. Slice and map values are sent as
// JSON strings; Photo, when set, replaces the profile picture.
type ProfileUpdate struct {
	Fields map[string]any
	Photo  *models.UploadFile
}
