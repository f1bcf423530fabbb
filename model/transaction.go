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
	"encoding/json"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxTransactionBatch is the largest number of transactions accepted in one upload.
const MaxTransactionBatch = 200

var (
	ErrBatchTooLarge = fmt.Errorf("must not contain more than %d transactions", MaxTransactionBatch)
	ErrBatchEmpty    = errors.New("cannot be empty")
)

// OtherDetail is a free-form key/value pair attached to a transaction or to an upload.
type OtherDetail struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Transaction is one historical merchant transaction used for credit scoring.
type Transaction struct {
	TransactionID   string        `json:"transaction_id"`
	MerchantID      string        `json:"merchant_id"`
	FaceAmount      json.Number   `json:"face_amount"`
	TransactionTime string        `json:"transaction_time"`
	OtherDetails    []OtherDetail `json:"other_details,omitempty"`
}

func (t *Transaction) validate(prefix string) error {
	err := validateFields(prefix,
		field("transaction_id", t.TransactionID, validation.Required),
		field("merchant_id", t.MerchantID, validation.Required),
		field("face_amount", t.FaceAmount, validation.Required, NumericRule),
		field("transaction_time", t.TransactionTime, validation.Required, DateTimeRule),
	)
	if err != nil {
		return err
	}

	for i, d := range t.OtherDetails {
		err := validateFields(fmt.Sprintf("%sother_details[%d].", prefix, i),
			field("key", d.Key, validation.Required),
			field("value", d.Value, validation.Required),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Transaction) Validate() error {
	return t.validate("")
}

// TransactionBatch is the list sent in a single data upload.
type TransactionBatch []Transaction

// Validate checks the batch size first and then each transaction in order,
// reporting the index of the first invalid one.
func (b TransactionBatch) Validate() error {
	if len(b) > MaxTransactionBatch {
		return &FieldError{Field: "transactions", Err: ErrBatchTooLarge}
	}
	if len(b) == 0 {
		return &FieldError{Field: "transactions", Err: ErrBatchEmpty}
	}
	for i := range b {
		if err := b[i].validate(fmt.Sprintf("transactions[%d].", i)); err != nil {
			return err
		}
	}
	return nil
}
