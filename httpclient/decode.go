package httpclient

import (
	"encoding/json"

	"medicare/models"
)

// Decode converts an envelope into a typed result. A successful envelope whose
// data cannot be decoded into T becomes a failure; a successful envelope with
// no data yields the zero T. Results of type struct{} carry no payload, so
// their data is never decoded.
func Decode[T any](env models.Envelope) models.Result[T] {
	if !env.Success {
		r := models.Fail[T](env.Message, env.Status)
		return r
	}
	var out T
	_, payloadless := any(out).(struct{})
	if env.HasData() && !payloadless {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return models.Fail[T]("unexpected response payload: "+err.Error(), env.Status)
		}
	}
	r := models.Ok(out, env.Message)
	r.Status = env.Status
	return r
}
