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

package storyblok

// In this file: query parameter shaping.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// params builds the query string.  Unset (nil) values are omitted, booleans
// become 1 or 0, object values become compact JSON strings.
type params url.Values

func (p params) setString(key string, v *string) {
	if v != nil {
		url.Values(p).Set(key, *v)
	}
}

func (p params) setInt(key string, v *int) {
	if v != nil {
		url.Values(p).Set(key, strconv.Itoa(*v))
	}
}

func (p params) setID(key string, v *int64) {
	if v != nil {
		url.Values(p).Set(key, strconv.FormatInt(*v, 10))
	}
}

func (p params) setBool(key string, v *bool) {
	if v != nil {
		url.Values(p).Set(key, boolParam(*v))
	}
}

// setJSON sets the key to the raw JSON value.  A JSON string is sent unquoted,
// anything else is sent compacted.
func (p params) setJSON(key string, v json.RawMessage) error {
	if len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		url.Values(p).Set(key, s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	url.Values(p).Set(key, buf.String())
	return nil
}

func (p params) values() url.Values {
	if len(p) == 0 {
		return nil
	}
	return url.Values(p)
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatID formats the identifier as it appears in the URL path.  Numbers
// decoded from JSON arrive as float64 and are formatted without the exponent.
func formatID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func ptr[T any](v T) *T {
	return &v
}
