// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package storyblok wraps the Storyblok Management API operations on stories,
// tags, components and datasources of a single space.
//
// Every operation issues its HTTP calls sequentially and returns either the
// (reshaped) JSON of the API or an error.  API failures are reported as
// *client.APIError, use [client.AsAPIError] to inspect the status code.
package storyblok

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

// Session is the Management API session bound to one space.
type Session struct {
	client *client.Client
	cfg    config
	lim    *rate.Limiter // paces the rate sensitive sweeps

	log *slog.Logger
}

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLogger sets the logger.  A nil logger is replaced with slog.Default.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Session) {
		if lg != nil {
			s.log = lg
		}
	}
}

// WithLimits sets the pacing and retry limits.  Zero values in l keep the
// defaults.
func WithLimits(l network.Limits) Option {
	return func(s *Session) {
		s.cfg.override = l
	}
}

// New creates a new Session using the client cl.
func New(cl *client.Client, opts ...Option) (*Session, error) {
	if cl == nil {
		return nil, errors.New("client is nil")
	}
	s := &Session{
		client: cl,
		cfg:    defConfig,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.limits.Apply(s.cfg.override); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("API limits failed validation: %s", vErr.Translate(network.ErrTranslations))
		}
		return nil, err
	}
	s.lim = network.NewLimiter(s.cfg.limits.Pacing, s.cfg.limits.Burst)
	return s, nil
}

// Client returns the underlying request client.
func (s *Session) Client() *client.Client {
	return s.client
}

// SpaceID returns the space of the session.
func (s *Session) SpaceID() string {
	return s.client.SpaceID()
}
