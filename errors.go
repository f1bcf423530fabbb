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

package pezesha

import "github.com/blnkfinance/pezesha-go/internal/apierror"

// Error is the type of every error returned by Client. Use errors.As to get
// at the Code, Field and StatusCode.
type Error = apierror.APIError

// ErrorCode classifies an Error.
type ErrorCode = apierror.ErrorCode

const (
	ErrConfiguration   = apierror.ErrConfiguration
	ErrAuthentication  = apierror.ErrAuthentication
	ErrValidation      = apierror.ErrValidation
	ErrInvalidResponse = apierror.ErrInvalidResponse
	ErrTransport       = apierror.ErrTransport
)

// CodeOf returns the ErrorCode carried by err, or "" if err did not come from this package.
func CodeOf(err error) ErrorCode {
	return apierror.CodeOf(err)
}

// IsConfigurationError reports whether err is a missing credential or setting.
func IsConfigurationError(err error) bool { return CodeOf(err) == ErrConfiguration }

// IsAuthenticationError reports whether obtaining a token failed.
func IsAuthenticationError(err error) bool { return CodeOf(err) == ErrAuthentication }

// IsValidationError reports whether the input was rejected before any request was sent.
func IsValidationError(err error) bool { return CodeOf(err) == ErrValidation }

// IsInvalidResponseError reports whether the API answered with an unexpected body.
func IsInvalidResponseError(err error) bool { return CodeOf(err) == ErrInvalidResponse }

// IsTransportError reports whether the request failed on the wire or with an error status.
func IsTransportError(err error) bool { return CodeOf(err) == ErrTransport }
