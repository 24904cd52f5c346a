package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"medicare/models"

	"github.com/tidwall/gjson"
)

const genericFailure = "An error occurred"

// transportFailure turns a network or decoding error into an envelope.
func transportFailure(err error) models.Envelope {
	msg := genericFailure
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return models.Envelope{Success: false, Message: msg, Status: http.StatusInternalServerError}
}

func (c *Client) handleResponse(resp *http.Response) models.Envelope {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(err)
	}
	declaredJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !ok {
		return models.Envelope{
			Success: false,
			Message: failureMessage(raw, declaredJSON),
			Status:  resp.StatusCode,
		}
	}

	if declaredJSON {
		if !gjson.ValidBytes(raw) {
			return transportFailure(errInvalidJSON)
		}
		return parseEnvelope(raw, resp.StatusCode)
	}

	// Undeclared bodies are given a best-effort JSON parse before being
	// returned as plain text.
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return models.Envelope{Success: true, Status: resp.StatusCode}
	}
	if gjson.Valid(trimmed) {
		return parseEnvelope([]byte(trimmed), resp.StatusCode)
	}
	text, _ := json.Marshal(string(raw))
	return models.Envelope{Success: true, Message: string(raw), Data: text, Status: resp.StatusCode}
}

type parseError string

func (e parseError) Error() string { return string(e) }

const errInvalidJSON = parseError("invalid JSON in response body")

// parseEnvelope reads a 2xx body. Objects carrying "success" use it directly;
// objects carrying only the legacy "status" flag use its truthiness; any other
// JSON value is a success whose data is the whole body.
func parseEnvelope(raw []byte, status int) models.Envelope {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return models.Envelope{Success: true, Data: json.RawMessage(raw), Status: status}
	}

	env := models.Envelope{
		Message: stringField(root, "message"),
		Token:   stringField(root, "token"),
		Role:    stringField(root, "role"),
		Status:  status,
	}

	success := root.Get("success")
	legacy := root.Get("status")
	switch {
	case success.Exists():
		env.Success = truthy(success)
	case legacy.Exists():
		env.Success = truthy(legacy)
	default:
		env.Success = true
		env.Data = json.RawMessage(raw)
		return env
	}

	if data := root.Get("data"); data.Exists() {
		env.Data = json.RawMessage(data.Raw)
	}
	return env
}

func failureMessage(raw []byte, declaredJSON bool) string {
	if gjson.ValidBytes(raw) {
		root := gjson.ParseBytes(raw)
		if root.IsObject() {
			for _, key := range []string{"message", "error"} {
				if msg := stringField(root, key); msg != "" {
					return msg
				}
			}
			return genericFailure
		}
	}
	if declaredJSON {
		return genericFailure
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return genericFailure
}

func stringField(root gjson.Result, key string) string {
	v := root.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// truthy follows JavaScript truthiness, which is how the backend's legacy
// clients interpreted these flags.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Float() != 0
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}
