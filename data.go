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

	"go.opentelemetry.io/otel/attribute"

	"github.com/blnkfinance/pezesha-go/model"
)

type uploadRequest struct {
	Channel      string                 `json:"channel"`
	Identifier   string                 `json:"identifier"`
	Transactions model.TransactionBatch `json:"transactions"`
	OtherDetails []model.OtherDetail    `json:"other_details"`
}

// UploadTransactions sends up to model.MaxTransactionBatch historical
// transactions of a merchant for credit scoring. otherDetails carries any
// extra information requested by the scoring team and may be nil.
func (c *Client) UploadTransactions(ctx context.Context, identifier string, transactions []model.Transaction, otherDetails []model.OtherDetail) (Result, error) {
	batch := model.TransactionBatch(transactions)
	if otherDetails == nil {
		otherDetails = []model.OtherDetail{}
	}

	return c.execute(ctx, uploadEndpoint, apiRequest{
		body: uploadRequest{
			Channel:      c.creds.Channel,
			Identifier:   identifier,
			Transactions: batch,
			OtherDetails: otherDetails,
		},
		validate: func() error {
			if err := model.ValidateIdentifier("identifier", identifier); err != nil {
				return err
			}
			return batch.Validate()
		},
		attrs: []attribute.KeyValue{attribute.Int("pezesha.transactions", len(batch))},
	})
}
