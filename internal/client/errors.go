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

package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrBody caps the amount of the error response body kept in APIError.
const maxErrBody = 64 << 10

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d (%s) for %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL, e.Body)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// AsAPIError returns the *APIError from the err chain, if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HandleResponse reads the response body.  If the status is not 2xx, it
// returns *APIError carrying the status code and the body text.
func HandleResponse(resp *http.Response, url string) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), URL: url}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return data, nil
}
