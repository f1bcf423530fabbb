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

type UserType string

const (
	Borrower UserType = "borrower"
	Merchant UserType = "merchant"
	Agent    UserType = "agent"
)

func (t UserType) Valid() bool {
	switch t {
	case Borrower, Merchant, Agent:
		return true
	}
	return false
}

type GeoLocation struct {
	Long string `json:"long"`
	Lat  string `json:"lat"`
}

// User is the registration payload shared by borrowers, merchants and agents.
// Terms is a pointer so that an omitted value can be told apart from false.
type User struct {
	Terms           *bool                  `json:"terms"`
	Location        string                 `json:"location"`
	MerchantRegDate string                 `json:"merchant_reg_date"`
	MerchantID      string                 `json:"merchant_id"`
	Email           string                 `json:"email"`
	DOB             string                 `json:"dob"`
	Phone           string                 `json:"phone"`
	FullNames       string                 `json:"full_names"`
	NationalID      string                 `json:"national_id"`
	Channel         string                 `json:"channel"`
	OtherPhoneNos   []string               `json:"other_phone_nos"`
	GeoLocation     *GeoLocation           `json:"geo_location"`
	MetaData        map[string]interface{} `json:"meta_data"`
}

// WithDefaults returns a copy of u carrying channel and the empty defaults the
// API expects for the optional fields.
func (u User) WithDefaults(channel string) User {
	u.Channel = channel
	if u.OtherPhoneNos == nil {
		u.OtherPhoneNos = []string{}
	}
	if u.GeoLocation == nil {
		u.GeoLocation = &GeoLocation{}
	}
	if u.MetaData == nil {
		u.MetaData = map[string]interface{}{}
	}
	return u
}

func (u *User) Validate() error {
	return validateFields("",
		field("terms", u.Terms, validation.NotNil),
		field("location", u.Location, validation.Required),
		field("merchant_reg_date", u.MerchantRegDate, validation.Required),
		field("merchant_id", u.MerchantID, validation.Required),
		field("email", u.Email, validation.Required),
		field("dob", u.DOB, validation.Required, DateRule),
		field("phone", u.Phone, validation.Required),
		field("full_names", u.FullNames, validation.Required),
		field("national_id", u.NationalID, validation.Required),
		field("channel", u.Channel, validation.Required),
	)
}
