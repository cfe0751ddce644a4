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

// In this file: content validation against the component schema.

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// ErrNoContent is returned by ValidateStoryContent when there is no content
// to validate.
var ErrNoContent = errors.New("story_id or story_content must be provided and valid")

// Validation error types.
const (
	MissingRequired = "missing_required"
	ExtraneousField = "extraneous_field"
)

// FieldError is a single validation finding.
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of the content validation.
type ValidationResult struct {
	IsValid                bool         `json:"isValid"`
	Errors                 []FieldError `json:"errors"`
	MissingFields          []string     `json:"missingFields"`
	ExtraneousFields       []string     `json:"extraneousFields"`
	ValidatedComponentName string       `json:"validatedComponentName"`
	StoryIDProcessed       string       `json:"storyIdProcessed"`
}

// ValidateContent checks the presence of the content fields against the
// schema.  A required field that is absent or null is missing, a content field
// that the schema does not declare is extraneous.  Values and nested blocks
// are not checked.  Fields are reported in the lexical order.
func ValidateContent(schema Schema, content map[string]any) ValidationResult {
	res := ValidationResult{
		Errors:           []FieldError{},
		MissingFields:    []string{},
		ExtraneousFields: []string{},
	}
	for _, name := range sortedKeys(schema) {
		if !schema[name].Required {
			continue
		}
		if v, ok := content[name]; !ok || v == nil {
			res.MissingFields = append(res.MissingFields, name)
			res.Errors = append(res.Errors, FieldError{
				Field:   name,
				Type:    MissingRequired,
				Message: fmt.Sprintf("Field '%s' is required.", name),
			})
		}
	}
	for _, name := range sortedKeys(content) {
		if _, ok := schema[name]; ok {
			continue
		}
		res.ExtraneousFields = append(res.ExtraneousFields, name)
		res.Errors = append(res.Errors, FieldError{
			Field:   name,
			Type:    ExtraneousField,
			Message: fmt.Sprintf("Field '%s' not in schema.", name),
		})
	}
	res.IsValid = len(res.Errors) == 0
	return res
}

// ValidateStoryContent validates the content against the schema of the
// component.  If content is empty, the content of the story storyID is
// fetched.  It returns ErrComponentNotFound if there is no such component,
// and ErrNoContent if there is no content either way.
func (s *Session) ValidateStoryContent(ctx context.Context, component string, storyID *int64, content map[string]any) (*ValidationResult, error) {
	schema, err := s.ComponentSchema(ctx, component)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 && storyID != nil {
		var probe storyProbe
		if err := s.client.Get(ctx, storyPath(*storyID), nil, &probe); err != nil {
			return nil, err
		}
		content = probe.Story.Content
	}
	if len(content) == 0 {
		return nil, ErrNoContent
	}
	res := ValidateContent(schema, content)
	res.ValidatedComponentName = component
	res.StoryIDProcessed = "N/A"
	if storyID != nil {
		res.StoryIDProcessed = strconv.FormatInt(*storyID, 10)
	}
	return &res, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
