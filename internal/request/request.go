/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 1024

// ErrDecode wraps failures to decode a successful response body.
var ErrDecode = errors.New("failed to decode response")

// Doer is the part of *http.Client used to send requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned by Call when the server answers with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server responded with status %d: %s", e.StatusCode, e.Body)
}

// ToJsonReq converts a Go object to a JSON-encoded HTTP request payload.
//
// Parameters:
// - payload interface{}: The data structure to be serialized into JSON.
//
// Returns:
// - *bytes.Buffer: The JSON-encoded payload wrapped in a bytes buffer, ready to be sent in a request.
// - error: An error if the JSON marshalling process fails.
func ToJsonReq(payload interface{}) (*bytes.Buffer, error) {
	c, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}
	return bytes.NewBuffer(c), nil
}

// NewJSONRequest builds a request with a JSON body (when payload is non-nil),
// the JSON content type and any extra headers.
func NewJSONRequest(ctx context.Context, method, url string, payload interface{}, headers map[string]string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		buf, err := ToJsonReq(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// Call sends req through client and decodes the JSON response body into response.
// A 4xx or 5xx status is reported as a *StatusError and the body is not decoded.
//
// Returns:
// - *http.Response: The raw HTTP response object (body already consumed).
// - error: An error if the HTTP request fails, the status is an error status, or decoding fails.
func Call(client Doer, req *http.Request, response interface{}) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return resp, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return resp, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return resp, nil
}
