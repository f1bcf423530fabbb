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

	"github.com/blnkfinance/pezesha-go/model"
)

// InitiateStkPush prompts phone (+254XXXXXXXXX) to pay amount into account.
// The request body carries no channel.
func (c *Client) InitiateStkPush(ctx context.Context, amount, phone, account string) (Result, error) {
	push := model.StkPush{Amount: amount, Phone: phone, Account: account}

	return c.execute(ctx, stkPushEndpoint, apiRequest{
		body:     push,
		validate: push.Validate,
	})
}
