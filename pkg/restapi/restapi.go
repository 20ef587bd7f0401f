package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API holds the connection to one backend. The per-collection resources
// share it; none of them carries business logic.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *API {
	return &API{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs one JSON round-trip and maps failures onto the error
// taxonomy: no response -> NetworkError, non-2xx -> HTTPError,
// everything else -> UnknownError.
func (a *API) do(method, path string, query url.Values, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return &UnknownError{Err: fmt.Errorf("failed to marshal request data: %w", err)}
		}
		body = bytes.NewBuffer(jsonData)
	}

	requestURL := a.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return &UnknownError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{Status: resp.StatusCode, Message: extractMessage(data, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &UnknownError{Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}

	return nil
}

func extractMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("Erro HTTP: %d", status)
}
