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
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/blnkfinance/pezesha-go/internal/apierror"
)

// session holds the bearer token of a client. The token is replaced on every
// successful authentication and is never refreshed on expiry.
type session struct {
	mu    sync.RWMutex
	token string
	group singleflight.Group
}

func (s *session) get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *session) set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	Provider     string `json:"provider"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Authenticate exchanges the client credentials for a bearer token and stores
// it on the client. The full decoded response is returned.
func (c *Client) Authenticate(ctx context.Context) (Result, error) {
	ep := authenticateEndpoint
	ctx, span := c.tracer.Start(ctx, ep.name)
	defer span.End()

	body := tokenRequest{
		GrantType:    "client_credentials",
		Provider:     "users",
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
	}

	result, _, err := c.roundTrip(ctx, ep, ep.path, nil, body, "")
	if err != nil {
		return nil, c.fail(span, ep, apierror.NewAuthenticationError(err.Error(), err))
	}

	token, ok := result[ep.marker].(string)
	if !ok || token == "" {
		return nil, c.fail(span, ep, apierror.NewAuthenticationError("Invalid response format", nil))
	}

	c.session.set(token)
	c.logger.WithField("operation", ep.name).Info("Authenticated with Pezesha")
	return result, nil
}

// AccessToken returns the bearer token currently held, or "" when the client
// has not authenticated yet.
func (c *Client) AccessToken() string {
	return c.session.get()
}

// ensureToken returns the held token, authenticating first when there is
// none. Concurrent callers share a single authentication request. The shared
// request ignores the cancellation of whichever caller started it; each caller
// stops waiting when its own ctx is done.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if token := c.session.get(); token != "" {
		return token, nil
	}

	flight := context.WithoutCancel(ctx)
	ch := c.session.group.DoChan("token", func() (interface{}, error) {
		if token := c.session.get(); token != "" {
			return token, nil
		}
		if _, err := c.Authenticate(flight); err != nil {
			return "", err
		}
		return c.session.get(), nil
	})

	select {
	case <-ctx.Done():
		return "", apierror.NewAuthenticationError(ctx.Err().Error(), ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
