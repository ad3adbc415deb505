package clients

import (
	"bytes"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// envelope mirrors the uniform response body every service emits.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newUpstreamHTTPClient builds the http client every REST client runs its calls
// through. The timeout comes from APP_UPSTREAM_TIMEOUT_IN_SECONDS.
func newUpstreamHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET against another service and decodes the data field of its
// envelope into out. A 404 maps to an upstream-not-found error so callers can degrade.
func getJSON(ctx context.Context, httpClient *http.Client, url, source string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrUpstreamNotFound(nil, source)
	}
	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUpstreamResponse(nil, source)
	}

	env := new(envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return exceptions.ErrDecodeResponse(err, source)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return exceptions.ErrDecodeResponse(err, source)
	}
	return nil
}

// postJSON performs a POST with a JSON body and discards the response data.
func postJSON(ctx context.Context, httpClient *http.Client, url, source string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return exceptions.ErrUpstreamResponse(nil, source)
	}
	return nil
}
