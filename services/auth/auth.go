package auth

import (
	"context"
	"encoding/json"

	"medicare/httpclient"
	"medicare/models"
)

// Register creates an account. Registration never logs the user in. With a
// photo attached the request is sent as multipart form data.
func (s *DefaultAuthService) Register(ctx context.Context, data models.RegistrationData) models.Result[models.UserProfile] {
	if data.Photo == nil {
		return httpclient.Decode[models.UserProfile](s.API.Post(ctx, "/auth/register", data, false))
	}

	form := httpclient.NewForm().
		Set("name", data.Name).
		Set("email", data.Email).
		Set("password", data.Password).
		Set("role", data.Role.String())
	if data.Gender != "" {
		form.Set("gender", data.Gender)
	}
	if data.Specialization != "" {
		form.Set("specialization", data.Specialization)
	}
	photo := *data.Photo
	if photo.FieldName == "" {
		photo.FieldName = "photo"
	}
	form.AddFile(photo)

	return httpclient.Decode[models.UserProfile](s.API.Post(ctx, "/auth/register", form, false))
}

// Login exchanges credentials for a session. The token and role come from the
// top level of the envelope, the profile from its data.
func (s *DefaultAuthService) Login(ctx context.Context, creds models.Credentials) models.Result[models.AuthPayload] {
	env := s.API.Post(ctx, "/auth/login", creds, false)
	if !env.Success {
		return models.Fail[models.AuthPayload](env.Message, env.Status)
	}

	var user models.UserProfile
	if env.HasData() {
		if err := json.Unmarshal(env.Data, &user); err != nil {
			return models.Fail[models.AuthPayload]("unexpected login payload: "+err.Error(), env.Status)
		}
	}
	return models.Ok(models.AuthPayload{User: user, Role: env.Role, Token: env.Token}, env.Message)
}

// Logout has no server side; the session store clears durable storage.
func (s *DefaultAuthService) Logout(ctx context.Context) models.Result[struct{}] {
	return models.Ok(struct{}{}, "Logout successful")
}
