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

// Package pezesha is a client for the Pezesha lending API: borrower
// registration, credit data upload, loan lifecycle and M-Pesa STK push.
package pezesha

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blnkfinance/pezesha-go/config"
	"github.com/blnkfinance/pezesha-go/internal/apierror"
	"github.com/blnkfinance/pezesha-go/internal/request"
	"github.com/blnkfinance/pezesha-go/model"
)

const tracerName = "github.com/blnkfinance/pezesha-go"

// Result is a decoded response body, returned exactly as the API sent it.
type Result map[string]interface{}

// Client talks to one Pezesha integration. It is safe for concurrent use.
type Client struct {
	creds      config.Credentials
	timeout    time.Duration
	insecure   bool
	httpClient *http.Client
	logger     logrus.FieldLogger
	tracer     trace.Tracer
	session    *session
}

// Option configures a Client built by New.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built by New. Timeout and TLS
// settings are then the caller's responsibility.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer replaces the tracer taken from the global otel provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Only meant for
// sandbox hosts with self-signed certificates.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.insecure = true
	}
}

// New builds a client. Every empty field of overrides is taken from the
// process-wide configuration (see config.FetchOrLoad).
func New(overrides config.Credentials, opts ...Option) (*Client, error) {
	cnf, err := config.FetchOrLoad()
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrConfiguration, "Pezesha configuration could not be loaded: "+err.Error(), err)
	}

	creds := overrides.Merge(cnf.Credentials())
	creds.BaseURL = strings.TrimRight(creds.BaseURL, "/")
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	c := &Client{
		creds:    creds,
		timeout:  time.Duration(cnf.Timeout) * time.Second,
		insecure: cnf.InsecureSkipVerify,
		logger:   logrus.StandardLogger(),
		tracer:   otel.Tracer(tracerName),
		session:  &session{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout <= 0 {
		c.timeout = config.DEFAULT_TIMEOUT * time.Second
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(c.timeout, c.insecure)
	}
	if c.insecure {
		c.logger.Warn("TLS certificate verification is disabled for the Pezesha client")
	}
	return c, nil
}

func checkCredentials(creds config.Credentials) error {
	if creds.Channel == "" {
		return apierror.NewConfigurationError("channel", "Pezesha channel is not configured. Contact pezesha support for assistance.")
	}
	if creds.ClientID == "" {
		return apierror.NewConfigurationError("client_id", "Pezesha client ID is not configured. Contact pezesha support to get one.")
	}
	if creds.ClientSecret == "" {
		return apierror.NewConfigurationError("client_secret", "Pezesha client secret is not configured. Contact pezesha support to get one.")
	}
	if creds.BaseURL == "" {
		return apierror.NewConfigurationError("base_url", "Pezesha base URL is not configured. Check PEZESHA_BASE_URL or your pezesha.json file.")
	}
	return nil
}

func newHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- opt-in only
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Channel returns the partner channel sent with requests.
func (c *Client) Channel() string {
	return c.creds.Channel
}

// endpoint describes one remote operation.
type endpoint struct {
	name    string // span and log name
	method  string
	path    string
	marker  string // field that must be present in a successful response
	failure string // prefix of error messages
}

var (
	authenticateEndpoint      = endpoint{"authenticate", http.MethodPost, "/oauth/token", "access_token", "Authentication failed"}
	registerEndpoint          = endpoint{"register_user", http.MethodPost, "/mfi/v1/borrowers", "customer_id", "User registration failed"}
	termsEndpoint             = endpoint{"handle_terms", http.MethodPost, "/mfi/v1/borrowers/terms", "status", "Terms operation failed"}
	optOutEndpoint            = endpoint{"opt_out", http.MethodPost, "/mfi/v1/borrowers/opt_out", "status", "Opt-out operation failed"}
	uploadEndpoint            = endpoint{"upload_transactions", http.MethodPost, "/mfi/v1.1/data", "status", "Data upload failed"}
	loanOffersEndpoint        = endpoint{"loan_offers", http.MethodPost, "/mfi/v1/borrowers/options", "status", "Loan offers request failed"}
	applyLoanEndpoint         = endpoint{"apply_loan", http.MethodPost, "/mfi/v1/borrowers/loans", "status", "Loan application failed"}
	loanStatusEndpoint        = endpoint{"loan_status", http.MethodPost, "/mfi/v1/borrowers/loan/status", "status", "Loan status request failed"}
	loanHistoryEndpoint       = endpoint{"loan_history", http.MethodPost, "/mfi/v1/borrowers/statement", "status", "Loan history request failed"}
	activeLoansEndpoint       = endpoint{"active_loans", http.MethodGet, "/mfi/v1/borrowers/active/", "status", "Active loans request failed"}
	repaymentScheduleEndpoint = endpoint{"repayment_schedule", http.MethodGet, "/mfi/v1/borrowers/repayment-shedules", "status", "Loan repayment schedule request failed"}
	stkPushEndpoint           = endpoint{"stk_push", http.MethodPost, "/mfi/v2/mpesa/stk", "status", "STK push request failed"}
)

// apiRequest is one authenticated call. validate runs before any network I/O.
type apiRequest struct {
	path     string
	query    url.Values
	body     interface{}
	validate func() error
	attrs    []attribute.KeyValue
}

// execute validates the input, makes sure a token is held and performs the call.
func (c *Client) execute(ctx context.Context, ep endpoint, req apiRequest) (Result, error) {
	ctx, span := c.tracer.Start(ctx, ep.name)
	defer span.End()
	span.SetAttributes(req.attrs...)

	if req.validate != nil {
		if err := req.validate(); err != nil {
			return nil, c.fail(span, ep, toValidationError(err))
		}
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, c.fail(span, ep, err)
	}

	path := req.path
	if path == "" {
		path = ep.path
	}
	result, statusCode, err := c.roundTrip(ctx, ep, path, req.query, req.body, token)
	if err != nil {
		if errors.Is(err, request.ErrDecode) {
			return nil, c.fail(span, ep, apierror.NewInvalidResponseError(ep.failure, err))
		}
		return nil, c.fail(span, ep, apierror.NewTransportError(ep.failure, statusCode, err))
	}

	if _, ok := result[ep.marker]; !ok || result[ep.marker] == nil {
		return nil, c.fail(span, ep, apierror.NewInvalidResponseError(ep.failure, nil))
	}
	return result, nil
}

// roundTrip sends one request and decodes the JSON object it returns. An
// empty token sends no Authorization header.
func (c *Client) roundTrip(ctx context.Context, ep endpoint, path string, query url.Values, body interface{}, token string) (Result, int, error) {
	requestID := model.NewRequestID()
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("pezesha.request_id", requestID),
		attribute.String("http.method", ep.method),
		attribute.String("http.route", ep.path),
	)

	target := c.creds.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	req, err := request.NewJSONRequest(ctx, ep.method, target, body, headers)
	if err != nil {
		return nil, 0, err
	}

	log := c.logger.WithFields(logrus.Fields{
		"operation":  ep.name,
		"method":     ep.method,
		"path":       path,
		"request_id": requestID,
	})
	log.Debug("Sending Pezesha request")

	started := time.Now()
	var result Result
	resp, err := request.Call(c.httpClient, req, &result)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	log = log.WithFields(logrus.Fields{
		"status_code": statusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	if err != nil {
		log.WithError(err).Error("Pezesha request failed")
		return nil, statusCode, err
	}

	log.Debug("Pezesha response received")
	return result, statusCode, nil
}

func (c *Client) fail(span trace.Span, ep endpoint, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if code := apierror.CodeOf(err); code != "" {
		span.SetAttributes(attribute.String("pezesha.error_code", string(code)))
	}
	if apierror.CodeOf(err) == apierror.ErrValidation {
		c.logger.WithField("operation", ep.name).WithError(err).Warn("Rejected invalid Pezesha request")
	}
	return err
}

func toValidationError(err error) error {
	var fe *model.FieldError
	if errors.As(err, &fe) {
		return apierror.NewValidationError(fe.Field, fe.Err)
	}
	return apierror.NewValidationError("", err)
}
