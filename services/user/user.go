package user

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"medicare/httpclient"
	"medicare/models"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) models.Result[models.UserProfile] {
	return httpclient.Decode[models.UserProfile](s.API.Get(ctx, "/users/"+url.PathEscape(userID), true))
}

// UpdateProfile always sends multipart form data.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) models.Result[models.UserProfile] {
	form, err := BuildForm(update.Fields, update.Photo)
	if err != nil {
		return models.Fail[models.UserProfile](err.Error(), 0)
	}
	return httpclient.Decode[models.UserProfile](s.API.Put(ctx, "/users/"+url.PathEscape(userID), form, true))
}

// DeleteProfile asks for account removal. The backend queues the request for
// an administrator, which the result reports through RequiresApproval.
func (s *DefaultUserService) DeleteProfile(ctx context.Context, userID string) models.Result[struct{}] {
	r := httpclient.Decode[struct{}](s.API.Delete(ctx, "/users/"+url.PathEscape(userID), true))
	r.RequiresApproval = true
	return r
}

func (s *DefaultUserService) UpdatePassword(ctx context.Context, req models.PasswordUpdate) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Put(ctx, "/password", req, true))
}

// BuildForm encodes profile fields for a multipart update. Keys are written in
// sorted order; slices, maps and structs become JSON strings.
func BuildForm(fields map[string]any, photo *models.UploadFile) (*httpclient.Form, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	form := httpclient.NewForm()
	for _, k := range keys {
		switch v := fields[k].(type) {
		case nil:
			continue
		case string:
			form.Set(k, v)
		case fmt.Stringer:
			form.Set(k, v.String())
		case bool, int, int64, float64, float32:
			form.Set(k, fmt.Sprint(v))
		default:
			if err := form.SetJSON(k, v); err != nil {
				return nil, err
			}
		}
	}
	if photo != nil {
		p := *photo
		if p.FieldName == "" {
			p.FieldName = "photo"
		}
		form.AddFile(p)
	}
	return form, nil
}
