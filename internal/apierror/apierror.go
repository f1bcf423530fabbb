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

package apierror

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrConfiguration   ErrorCode = "CONFIGURATION_ERROR"
	ErrAuthentication  ErrorCode = "AUTHENTICATION_FAILED"
	ErrValidation      ErrorCode = "VALIDATION_ERROR"
	ErrInvalidResponse ErrorCode = "INVALID_RESPONSE"
	ErrTransport       ErrorCode = "TRANSPORT_ERROR"
)

// APIError is the single error type returned by the client. Code tells the
// failure kinds apart; Message is the human readable text.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Field      string    `json:"field,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Err        error     `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(code ErrorCode, message string, err error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewConfigurationError reports a credential or setting that is empty after
// falling back to the process-wide configuration.
func NewConfigurationError(field, message string) *APIError {
	e := NewAPIError(ErrConfiguration, message, nil)
	e.Field = field
	return e
}

// NewAuthenticationError prefixes the cause with "Authentication failed: ".
func NewAuthenticationError(cause string, err error) *APIError {
	return NewAPIError(ErrAuthentication, fmt.Sprintf("Authentication failed: %s", cause), err)
}

func NewValidationError(field string, err error) *APIError {
	message := err.Error()
	if field != "" {
		message = fmt.Sprintf("%s: %s", field, err.Error())
	}
	e := NewAPIError(ErrValidation, message, err)
	e.Field = field
	return e
}

// NewInvalidResponseError is returned when a response decodes but lacks the
// operation's marker field, or does not decode at all.
func NewInvalidResponseError(prefix string, err error) *APIError {
	return NewAPIError(ErrInvalidResponse, fmt.Sprintf("%s: Invalid response format", prefix), err)
}

func NewTransportError(prefix string, statusCode int, err error) *APIError {
	e := NewAPIError(ErrTransport, fmt.Sprintf("%s: %s", prefix, err.Error()), err)
	e.StatusCode = statusCode
	return e
}

// CodeOf returns the code of the first APIError in err's chain, or "" when
// err is not one.
func CodeOf(err error) ErrorCode {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
