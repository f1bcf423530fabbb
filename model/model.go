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
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	msisdnPattern   = regexp.MustCompile(`^\+254\d{9}$`)
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FieldError names the first field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

type fieldRules struct {
	name  string
	value interface{}
	rules []validation.Rule
}

func field(name string, value interface{}, rules ...validation.Rule) fieldRules {
	return fieldRules{name: name, value: value, rules: rules}
}

// validateFields runs each field's rules in order and stops at the first failure.
func validateFields(prefix string, fields ...fieldRules) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return &FieldError{Field: prefix + f.name, Err: err}
		}
	}
	return nil
}

// ValidateIdentifier checks a single required identifier argument such as a
// merchant ID, national ID or merchant key.
func ValidateIdentifier(name, value string) error {
	return validateFields("", field(name, value, validation.Required))
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case *string:
		if v == nil {
			return "", true
		}
		return *v, true
	}
	return "", false
}

// formatRule matches value against pattern and then parses it with layout, so
// "2024-13-40" is rejected even though it has the right shape.
func formatRule(pattern *regexp.Regexp, layout, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok {
			return errors.New("must be a string")
		}
		if s == "" {
			return nil
		}
		if !pattern.MatchString(s) {
			return errors.New(message)
		}
		if _, err := time.Parse(layout, s); err != nil {
			return errors.New(message)
		}
		return nil
	})
}

var (
	// DateRule accepts calendar dates written as YYYY-MM-DD.
	DateRule = formatRule(datePattern, dateLayout, "must be in Y-m-d format")

	// DateTimeRule accepts timestamps written as YYYY-MM-DD HH:MM:SS.
	DateTimeRule = formatRule(dateTimePattern, dateTimeLayout, "invalid datetime format, expected YYYY-MM-DD HH:mm:ss")

	// MSISDNRule accepts Kenyan mobile numbers with the +254 country code.
	MSISDNRule = validation.Match(msisdnPattern).Error("invalid phone number format, must be in format +254XXXXXXXXX")

	// NumericRule accepts anything that parses as a decimal number. A
	// json.Number must also be a valid JSON number literal, since it is sent
	// unquoted.
	NumericRule = validation.By(func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok {
			return errors.New("must be numeric")
		}
		if s == "" {
			return nil
		}
		if _, err := decimal.NewFromString(s); err != nil {
			return errors.New("must be numeric")
		}
		if _, isNumber := value.(json.Number); isNumber && !json.Valid([]byte(s)) {
			return errors.New("must be numeric")
		}
		return nil
	})
)

// NewRequestID returns an identifier used to correlate log lines and spans of one call.
func NewRequestID() string {
	return fmt.Sprintf("req_%s", uuid.New().String())
}
