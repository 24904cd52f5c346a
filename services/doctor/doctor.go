package doctor

import (
	"context"
	"net/url"
	"strconv"

	"medicare/httpclient"
	"medicare/models"
	"medicare/services/user"
)

// DefaultTopRatedLimit is used when GetTopRatedDoctors is given no limit.
const DefaultTopRatedLimit = 6

// GetAllDoctors lists approved doctors, optionally filtered by a free-text query.
func (s *DefaultDoctorService) GetAllDoctors(ctx context.Context, query string) models.Result[[]models.Doctor] {
	path := "/doctors"
	if query != "" {
		path += "?" + url.Values{"query": {query}}.Encode()
	}
	return httpclient.Decode[[]models.Doctor](s.API.Get(ctx, path, false))
}

func (s *DefaultDoctorService) GetDoctorByID(ctx context.Context, doctorID string) models.Result[models.Doctor] {
	return httpclient.Decode[models.Doctor](s.API.Get(ctx, "/doctors/"+url.PathEscape(doctorID), false))
}

// UpdateDoctor sends the doctor profile as multipart form data; list fields
// such as qualifications and experiences are JSON-stringified.
func (s *DefaultDoctorService) UpdateDoctor(ctx context.Context, doctorID string, fields map[string]any, photo *models.UploadFile) models.Result[models.Doctor] {
	form, err := user.BuildForm(fields, photo)
	if err != nil {
		return models.Fail[models.Doctor](err.Error(), 0)
	}
	return httpclient.Decode[models.Doctor](s.API.Put(ctx, "/doctors/"+url.PathEscape(doctorID), form, true))
}

func (s *DefaultDoctorService) GetTopRatedDoctors(ctx context.Context, limit int) models.Result[[]models.Doctor] {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	path := "/doctors?sort=-averageRating&limit=" + strconv.Itoa(limit)
	return httpclient.Decode[[]models.Doctor](s.API.Get(ctx, path, false))
}

// DeleteDoctor requests removal of a doctor account; like user deletion it
// needs administrator approval.
func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, doctorID string) models.Result[struct{}] {
	r := httpclient.Decode[struct{}](s.API.Delete(ctx, "/doctors/"+url.PathEscape(doctorID), true))
	r.RequiresApproval = true
	return r
}
