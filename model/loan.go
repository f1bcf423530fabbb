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

package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Known loan states reported by the loan status endpoint.
const (
	LoanProcessing = "Processing"
	LoanScore      = "Score"
	LoanFunding    = "Funding"
	LoanFunded     = "Funded"
	LoanPaid       = "Paid"
	LoanCancelled  = "Cancelled"
	LoanLate       = "Late"
)

// Repayment schedule states.
const (
	ScheduleActive  = "Active on Schedule"
	SchedulePaid    = "Paid"
	ScheduleOverdue = "Overdue"
)

// PaymentDetails tells Pezesha where to disburse the loan.
type PaymentDetails struct {
	Type        string `json:"type"`
	Number      string `json:"number"`
	CallbackURL string `json:"callback_url"`
}

// LoanApplication mirrors the terms of one of the offers returned by the
// loan offers endpoint. All amounts are strings on the wire.
type LoanApplication struct {
	Amount         string         `json:"amount"`
	Duration       string         `json:"duration"`
	Interest       string         `json:"interest"`
	Rate           string         `json:"rate"`
	Fee            string         `json:"fee"`
	PaymentDetails PaymentDetails `json:"payment_details"`
}

func (l *LoanApplication) Validate() error {
	err := validateFields("",
		field("amount", l.Amount, validation.Required),
		field("duration", l.Duration, validation.Required),
		field("interest", l.Interest, validation.Required),
		field("rate", l.Rate, validation.Required),
		field("fee", l.Fee, validation.Required),
	)
	if err != nil {
		return err
	}
	return validateFields("payment_details.",
		field("type", l.PaymentDetails.Type, validation.Required),
		field("number", l.PaymentDetails.Number, validation.Required),
		field("callback_url", l.PaymentDetails.CallbackURL, validation.Required),
	)
}
