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

package mcp

// In this file: tool argument extraction.

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// errMissingArg returns the error reported for a missing required argument.
func errMissingArg(name string) error {
	return fmt.Errorf("%s is required", name)
}

// arg returns the named argument and whether it is present and not null.
func arg(req mcplib.CallToolRequest, name string) (any, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	v, ok := arg(req, name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	v, ok := arg(req, name)
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	v, ok := arg(req, name)
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// toID converts a JSON number or a numeric string to an id.
func toID(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	}
	return 0, fmt.Errorf("unsupported type %T", v)
}

// idArg returns the required id argument name.  Agents send ids either as
// numbers or as strings, both are accepted.
func idArg(req mcplib.CallToolRequest, name string) (int64, error) {
	v, ok := arg(req, name)
	if !ok {
		return 0, errMissingArg(name)
	}
	id, err := toID(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// optIDArg is idArg for optional ids; it returns nil if the argument is
// absent.
func optIDArg(req mcplib.CallToolRequest, name string) (*int64, error) {
	if _, ok := arg(req, name); !ok {
		return nil, nil
	}
	id, err := idArg(req, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// idsArg returns the required array of ids.
func idsArg(req mcplib.CallToolRequest, name string) ([]int64, error) {
	v, ok := arg(req, name)
	if !ok {
		return nil, errMissingArg(name)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array", name)
	}
	ids := make([]int64, 0, len(arr))
	for i, el := range arr {
		id, err := toID(el)
		if err != nil {
			return nil, fmt.Errorf("invalid %s[%d]: %w", name, i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// stringsArg returns the required array of strings.
func stringsArg(req mcplib.CallToolRequest, name string) ([]string, error) {
	v, ok := arg(req, name)
	if !ok {
		return nil, errMissingArg(name)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array", name)
	}
	ss := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", name, i)
		}
		ss = append(ss, s)
	}
	return ss, nil
}

// objectArg extracts a named object argument.
func objectArg(req mcplib.CallToolRequest, name string) (map[string]any, bool) {
	v, ok := arg(req, name)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// objectsArg returns the required array of objects.
func objectsArg(req mcplib.CallToolRequest, name string) ([]map[string]any, error) {
	v, ok := arg(req, name)
	if !ok {
		return nil, errMissingArg(name)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array", name)
	}
	out := make([]map[string]any, 0, len(arr))
	for i, el := range arr {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be an object", name, i)
		}
		out = append(out, m)
	}
	return out, nil
}

// bindArgs decodes the request arguments into v, which must be a pointer to
// a struct with json tags.  Unknown arguments are ignored.
func bindArgs(req mcplib.CallToolRequest, v any) error {
	args := req.GetArguments()
	if args == nil {
		return nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
