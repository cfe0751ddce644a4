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

// In this file: components and their schemas.

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrFieldNotFound     = errors.New("field not found in component schema")
)

// FieldOption is a choice of an option field.
type FieldOption struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Field is a component schema field definition.
type Field struct {
	Type     string        `json:"type"`
	Required bool          `json:"required,omitempty"`
	Pos      int           `json:"pos,omitempty"`
	Options  []FieldOption `json:"options,omitempty"`
	Source   string        `json:"source,omitempty"`
}

// Schema maps the field name to its definition.
type Schema map[string]Field

// Component is a content block type.
type Component struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	IsRoot      bool   `json:"is_root"`
	IsNestable  bool   `json:"is_nestable"`
	Schema      Schema `json:"schema"`
}

// Components lists the components of the space.
func (s *Session) Components(ctx context.Context) ([]Component, error) {
	var resp struct {
		Components []Component `json:"components"`
	}
	if err := s.client.Get(ctx, "/components", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Components, nil
}

// ComponentByName returns the component with the technical name name.
func (s *Session) ComponentByName(ctx context.Context, name string) (*Component, error) {
	cc, err := s.Components(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := lo.Find(cc, func(c Component) bool { return c.Name == name })
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return &c, nil
}

// ComponentSchema returns the schema of the component name.
func (s *Session) ComponentSchema(ctx context.Context, name string) (Schema, error) {
	c, err := s.ComponentByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.Schema, nil
}

// Component returns the raw component definition, with every schema property
// the API returns.
func (s *Session) Component(ctx context.Context, id int64) (map[string]any, error) {
	var resp struct {
		Component map[string]any `json:"component"`
	}
	if err := s.client.Get(ctx, componentPath(id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Component == nil {
		return nil, fmt.Errorf("%w: %d", ErrComponentNotFound, id)
	}
	return resp.Component, nil
}

// FieldOptions returns the options of the field of the component id.
func (s *Session) FieldOptions(ctx context.Context, id int64, field string) ([]FieldOption, error) {
	var resp struct {
		Component Component `json:"component"`
	}
	if err := s.client.Get(ctx, componentPath(id), nil, &resp); err != nil {
		return nil, err
	}
	f, ok := resp.Component.Schema[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, field)
	}
	return f.Options, nil
}

// OptionSync is the result of SyncFieldOptionsFromInternalTags.
type OptionSync struct {
	ComponentID int64         `json:"component_id"`
	Field       string        `json:"field"`
	Options     []FieldOption `json:"options"`
}

// SyncFieldOptionsFromInternalTags replaces the options of the field with the
// internal tags of the space, using the tag name as both the option name and
// value, and saves the component.  The other schema fields are sent back
// unchanged.
func (s *Session) SyncFieldOptionsFromInternalTags(ctx context.Context, id int64, field string) (*OptionSync, error) {
	tags, err := s.InternalTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("internal tags: %w", err)
	}
	opts := lo.Map(tags, func(t InternalTag, _ int) FieldOption {
		return FieldOption{Name: t.Name, Value: t.Name}
	})

	comp, err := s.Component(ctx, id)
	if err != nil {
		return nil, err
	}
	schema, _ := comp["schema"].(map[string]any)
	def, ok := schema[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, field)
	}
	def["options"] = opts
	def["source"] = "self"

	body := map[string]any{"component": map[string]any{"schema": schema}}
	if err := s.client.Put(ctx, componentPath(id), body, nil); err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	s.log.InfoContext(ctx, "field options updated", "component_id", id, "field", field, "options", len(opts))
	return &OptionSync{ComponentID: id, Field: field, Options: opts}, nil
}

func componentPath(id int64) string {
	return "/components/" + strconv.FormatInt(id, 10)
}
