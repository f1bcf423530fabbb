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
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"github.com/blnkfinance/pezesha-go/model"
)

type loanApplicationRequest struct {
	model.LoanApplication
	Channel   string `json:"channel"`
	PezeshaID string `json:"pezesha_id"`
}

type statementRequest struct {
	Channel        string `json:"channel"`
	Identification string `json:"identification"`
	Page           int    `json:"page"`
}

// LoanOffers returns the loan limit and offers a merchant qualifies for based
// on their credit score.
func (c *Client) LoanOffers(ctx context.Context, identifier string) (Result, error) {
	return c.execute(ctx, loanOffersEndpoint, apiRequest{
		body: identifierRequest{Channel: c.creds.Channel, Identifier: identifier},
		validate: func() error {
			return model.ValidateIdentifier("identifier", identifier)
		},
	})
}

// ApplyLoan applies for a loan on behalf of the user with the given Pezesha ID
// (returned at registration).
func (c *Client) ApplyLoan(ctx context.Context, pezeshaID string, application model.LoanApplication) (Result, error) {
	return c.execute(ctx, applyLoanEndpoint, apiRequest{
		body: loanApplicationRequest{
			LoanApplication: application,
			Channel:         c.creds.Channel,
			PezeshaID:       pezeshaID,
		},
		validate: func() error {
			if err := model.ValidateIdentifier("pezesha_id", pezeshaID); err != nil {
				return err
			}
			return application.Validate()
		},
	})
}

// LoanStatus returns the state of the user's latest loan. The states are
// listed as model.Loan* constants.
func (c *Client) LoanStatus(ctx context.Context, identifier string) (Result, error) {
	return c.execute(ctx, loanStatusEndpoint, apiRequest{
		body: identifierRequest{Channel: c.creds.Channel, Identifier: identifier},
		validate: func() error {
			return model.ValidateIdentifier("identifier", identifier)
		},
	})
}

// LoanHistory returns one page of a borrower's loan statement. Pages start at
// 1; a page below 1 asks for the first page.
func (c *Client) LoanHistory(ctx context.Context, identifier string, page int) (Result, error) {
	if page < 1 {
		page = 1
	}
	return c.execute(ctx, loanHistoryEndpoint, apiRequest{
		body: statementRequest{Channel: c.creds.Channel, Identification: identifier, Page: page},
		validate: func() error {
			return model.ValidateIdentifier("identifier", identifier)
		},
		attrs: []attribute.KeyValue{attribute.Int("pezesha.page", page)},
	})
}

// ActiveLoans lists the active loans of the merchant with the given merchant
// key (issued by Pezesha).
func (c *Client) ActiveLoans(ctx context.Context, merchantKey string) (Result, error) {
	return c.execute(ctx, activeLoansEndpoint, apiRequest{
		path: activeLoansEndpoint.path + url.PathEscape(merchantKey),
		validate: func() error {
			return model.ValidateIdentifier("merchant_key", merchantKey)
		},
	})
}

// RepaymentSchedule returns the repayment schedule of a merchant's loan.
// Schedule states are listed as model.Schedule* constants.
func (c *Client) RepaymentSchedule(ctx context.Context, merchantID string) (Result, error) {
	return c.execute(ctx, repaymentScheduleEndpoint, apiRequest{
		query: url.Values{
			"channel":     []string{c.creds.Channel},
			"merchant_id": []string{merchantID},
		},
		validate: func() error {
			return model.ValidateIdentifier("merchant_id", merchantID)
		},
	})
}
