package handlers

import (
	"io"
	"net/http"

	"medicare/models"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respond writes a service or store result. Failures keep the backend status
// when there is one.
func respond[T any](c *gin.Context, res models.Result[T]) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	status := res.Status
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}

// bind decodes and validates the request body into form. On failure it writes
// a 400 with the form's message and returns false.
func bind(c *gin.Context, form any) bool {
	validation.Engine()
	if err := c.ShouldBind(form); err != nil {
		msg := validation.FromBindError(form, err)
		getLogger(c).Debug("Rejected form", zap.String("path", c.Request.URL.Path), zap.String("message", msg))
		utils.JSONError(c, http.StatusBadRequest, msg, "")
		return false
	}
	return true
}

// uploadedPhoto reads an optional "photo" file from a multipart request.
func uploadedPhoto(c *gin.Context) (*models.UploadFile, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &models.UploadFile{FieldName: "photo", FileName: header.Filename, Content: content}, nil
}
