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
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/blnkfinance/pezesha-go/model"
)

type identifierRequest struct {
	Channel    string `json:"channel"`
	Identifier string `json:"identifier"`
}

type termsRequest struct {
	Channel    string `json:"channel"`
	Identifier string `json:"identifier"`
	Terms      bool   `json:"terms"`
}

// RegisterUser registers a borrower, merchant or agent. The channel is filled
// in by the client and empty optional fields get the API's defaults.
// A successful response carries a customer_id.
func (c *Client) RegisterUser(ctx context.Context, user model.User, userType model.UserType) (Result, error) {
	payload := user.WithDefaults(c.creds.Channel)

	return c.execute(ctx, registerEndpoint, apiRequest{
		body: payload,
		validate: func() error {
			if !userType.Valid() {
				return &model.FieldError{Field: "user_type", Err: errors.New("must be one of borrower, merchant or agent")}
			}
			return payload.Validate()
		},
		attrs: []attribute.KeyValue{attribute.String("pezesha.user_type", string(userType))},
	})
}

func (c *Client) RegisterBorrower(ctx context.Context, user model.User) (Result, error) {
	return c.RegisterUser(ctx, user, model.Borrower)
}

func (c *Client) RegisterMerchant(ctx context.Context, user model.User) (Result, error) {
	return c.RegisterUser(ctx, user, model.Merchant)
}

func (c *Client) RegisterAgent(ctx context.Context, user model.User) (Result, error) {
	return c.RegisterUser(ctx, user, model.Agent)
}

// HandleTerms records whether the user identified by a merchant ID or national
// ID accepts (true) or declines (false) the terms and conditions.
func (c *Client) HandleTerms(ctx context.Context, identifier string, terms bool) (Result, error) {
	return c.execute(ctx, termsEndpoint, apiRequest{
		body: termsRequest{Channel: c.creds.Channel, Identifier: identifier, Terms: terms},
		validate: func() error {
			return model.ValidateIdentifier("identifier", identifier)
		},
		attrs: []attribute.KeyValue{attribute.Bool("pezesha.terms", terms)},
	})
}

func (c *Client) AcceptTerms(ctx context.Context, identifier string) (Result, error) {
	return c.HandleTerms(ctx, identifier, true)
}

func (c *Client) DeclineTerms(ctx context.Context, identifier string) (Result, error) {
	return c.HandleTerms(ctx, identifier, false)
}

// OptOut removes a merchant from the Pezesha ecosystem.
func (c *Client) OptOut(ctx context.Context, identifier string) (Result, error) {
	return c.execute(ctx, optOutEndpoint, apiRequest{
		body: identifierRequest{Channel: c.creds.Channel, Identifier: identifier},
		validate: func() error {
			return model.ValidateIdentifier("identifier", identifier)
		},
	})
}
