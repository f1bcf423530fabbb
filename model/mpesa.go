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

// StkPush asks M-Pesa to prompt Phone to pay Amount into Account.
type StkPush struct {
	Amount  string `json:"amount"`
	Phone   string `json:"phone"`
	Account string `json:"account"`
}

func (s *StkPush) Validate() error {
	return validateFields("",
		field("phone", s.Phone, validation.Required, MSISDNRule),
		field("amount", s.Amount, validation.Required, NumericRule),
		field("account", s.Account, validation.Required),
	)
}
