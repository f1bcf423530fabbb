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

package apierror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blnkfinance/pezesha-go/internal/apierror"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	cause := errors.New("boom")
	apiErr := apierror.NewAPIError(apierror.ErrTransport, "Something went wrong", cause)

	assert.Equal(t, apierror.ErrTransport, apiErr.Code)
	assert.Equal(t, "Something went wrong", apiErr.Message)
	assert.Equal(t, "Something went wrong", apiErr.Error())
	assert.ErrorIs(t, apiErr, cause)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *apierror.APIError
		code     apierror.ErrorCode
		expected string
	}{
		{
			name:     "Configuration",
			err:      apierror.NewConfigurationError("channel", "Pezesha channel is not configured."),
			code:     apierror.ErrConfiguration,
			expected: "Pezesha channel is not configured.",
		},
		{
			name:     "Authentication",
			err:      apierror.NewAuthenticationError("Invalid response format", nil),
			code:     apierror.ErrAuthentication,
			expected: "Authentication failed: Invalid response format",
		},
		{
			name:     "Validation with field",
			err:      apierror.NewValidationError("dob", errors.New("must be in Y-m-d format")),
			code:     apierror.ErrValidation,
			expected: "dob: must be in Y-m-d format",
		},
		{
			name:     "Validation without field",
			err:      apierror.NewValidationError("", errors.New("Transactions array cannot be empty")),
			code:     apierror.ErrValidation,
			expected: "Transactions array cannot be empty",
		},
		{
			name:     "Invalid response",
			err:      apierror.NewInvalidResponseError("Loan offers request failed", nil),
			code:     apierror.ErrInvalidResponse,
			expected: "Loan offers request failed: Invalid response format",
		},
		{
			name:     "Transport",
			err:      apierror.NewTransportError("Opt-out operation failed", 502, errors.New("bad gateway")),
			code:     apierror.ErrTransport,
			expected: "Opt-out operation failed: bad gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apierror.NewValidationError("phone", errors.New("bad")))

	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(wrapped))
	assert.Equal(t, apierror.ErrorCode(""), apierror.CodeOf(errors.New("plain")))
	assert.Equal(t, apierror.ErrorCode(""), apierror.CodeOf(nil))
}

func TestValidationErrorKeepsField(t *testing.T) {
	err := apierror.NewValidationError("transactions[3].face_amount", errors.New("must be numeric"))
	assert.Equal(t, "transactions[3].face_amount", err.Field)
}
