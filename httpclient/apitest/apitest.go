// Package apitest provides a scripted httpclient.API for service and store tests.
package apitest

import (
	"context"
	"encoding/json"
	"sync"

	"medicare/httpclient"
	"medicare/models"
)

// Call is one recorded request.
type Call struct {
	Method       string
	Path         string
	Body         any
	AuthRequired bool
}

// API answers every request from Responses keyed by "METHOD path", falling
// back to Default. It records every call.
type API struct {
	mu        sync.Mutex
	Responses map[string]models.Envelope
	Default   models.Envelope
	Calls     []Call
}

var _ httpclient.API = (*API)(nil)

func New() *API {
	return &API{
		Responses: map[string]models.Envelope{},
		Default:   models.Envelope{Success: false, Message: "no scripted response", Status: 500},
	}
}

// On scripts the response for method and path.
func (a *API) On(method, path string, env models.Envelope) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Responses[method+" "+path] = env
	return a
}

// Last returns the most recent call.
func (a *API) Last() Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.Calls) == 0 {
		return Call{}
	}
	return a.Calls[len(a.Calls)-1]
}

func (a *API) Get(ctx context.Context, path string, authRequired bool) models.Envelope {
	return a.record("GET", path, nil, authRequired)
}

func (a *API) Post(ctx context.Context, path string, body any, authRequired bool) models.Envelope {
	return a.record("POST", path, body, authRequired)
}

func (a *API) Put(ctx context.Context, path string, body any, authRequired bool) models.Envelope {
	return a.record("PUT", path, body, authRequired)
}

func (a *API) Delete(ctx context.Context, path string, authRequired bool) models.Envelope {
	return a.record("DELETE", path, nil, authRequired)
}

func (a *API) record(method, path string, body any, authRequired bool) models.Envelope {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Calls = append(a.Calls, Call{Method: method, Path: path, Body: body, AuthRequired: authRequired})
	if env, ok := a.Responses[method+" "+path]; ok {
		return env
	}
	return a.Default
}

// OK builds a successful envelope whose data is v encoded as JSON.
func OK(v any, message string) models.Envelope {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return models.Envelope{Success: true, Message: message, Data: raw, Status: 200}
}

// Failure builds a failed envelope.
func Failure(message string, status int) models.Envelope {
	return models.Envelope{Success: false, Message: message, Status: status}
}
