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

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateStkPush(t *testing.T) {
	c, mock := newTestClient(t)
	mockAuth(mock)

	var body map[string]interface{}
	mock.RegisterResponder(http.MethodPost, testBaseURL+"/mfi/v2/mpesa/stk",
		capture(t, &body, map[string]interface{}{
			"status":        200,
			"response_code": 0,
			"error":         false,
			"message":       "STK Request Submitted Successfully",
		}))

	result, err := c.InitiateStkPush(context.Background(), "1000", "+254712345678", "MERCHANT123")
	require.NoError(t, err)
	assert.Equal(t, "STK Request Submitted Successfully", result["message"])
	assert.Equal(t, map[string]interface{}{
		"amount":  "1000",
		"phone":   "+254712345678",
		"account": "MERCHANT123",
	}, body)
}

func TestInitiateStkPush_Validation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		phone   string
		account string
		field   string
	}{
		{"local phone format", "1000", "0712345678", "MERCHANT123", "phone"},
		{"short phone", "1000", "+25471234567", "MERCHANT123", "phone"},
		{"foreign prefix", "1000", "+255712345678", "MERCHANT123", "phone"},
		{"non numeric amount", "ten", "+254712345678", "MERCHANT123", "amount"},
		{"missing amount", "", "+254712345678", "MERCHANT123", "amount"},
		{"missing account", "1000", "+254712345678", "", "account"},
		{"phone checked first", "ten", "0712345678", "", "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newTestClient(t)
			mockAuth(mock)

			_, err := c.InitiateStkPush(context.Background(), tt.amount, tt.phone, tt.account)
			e := asError(t, err)
			assert.Equal(t, ErrValidation, e.Code)
			assert.Equal(t, tt.field, e.Field)
			assert.Equal(t, 0, mock.GetTotalCallCount())
		})
	}
}
