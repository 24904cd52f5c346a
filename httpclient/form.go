package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"medicare/models"
)

// Form is a multipart request body. Callers never set a content type for it;
// the client writes the boundary header itself.
type Form struct {
	keys   []string
	values map[string]string
	files  []models.UploadFile
}

func NewForm() *Form {
	return &Form{values: make(map[string]string)}
}

// Set adds or replaces a text field, keeping first-insertion order.
func (f *Form) Set(key, value string) *Form {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
	return f
}

// SetJSON stores v as a JSON-encoded text field. The backend expects array
// fields in multipart bodies in this form.
func (f *Form) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode form field %q: %w", key, err)
	}
	f.Set(key, string(raw))
	return nil
}

// AddFile attaches a file part.
func (f *Form) AddFile(file models.UploadFile) *Form {
	f.files = append(f.files, file)
	return f
}

// Value returns a text field.
func (f *Form) Value(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Files returns the attached files.
func (f *Form) Files() []models.UploadFile {
	return f.files
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range f.keys {
		if err := w.WriteField(k, f.values[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", k, err)
		}
	}
	for _, file := range f.files {
		field := file.FieldName
		if field == "" {
			field = "photo"
		}
		part, err := w.CreateFormFile(field, file.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", file.FileName, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write form file %q: %w", file.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
