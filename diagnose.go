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

// In this file: story access diagnostic.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/samber/lo"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
)

// scenario is one combination of the story fetch parameters.
type scenario struct {
	name   string
	params map[string]string
}

func (sc scenario) published() bool {
	return sc.params["version"] == "published"
}

func (sc scenario) withContent() bool {
	return sc.params["with_content"] != ""
}

var accessScenarios = []scenario{
	{"Default (likely draft)", map[string]string{}},
	{"Published", map[string]string{"version": "published"}},
	{"Draft explicit", map[string]string{"version": "draft"}},
	{"Draft with content", map[string]string{"version": "draft", "with_content": "1"}},
	{"Published with content", map[string]string{"version": "published", "with_content": "1"}},
}

// AccessDetails describes the accessibility of one story version.
type AccessDetails struct {
	Accessible     bool   `json:"accessible"`
	ContentPresent bool   `json:"contentPresent"`
	FromScenario   string `json:"fromScenario"`
}

// observe records the successful scenario, if it is the first one or the
// first one with the content.
func (d *AccessDetails) observe(scenario string, contentPresent bool) {
	if !d.Accessible || (contentPresent && !d.ContentPresent) {
		*d = AccessDetails{Accessible: true, ContentPresent: contentPresent, FromScenario: scenario}
	}
}

// StorySummary is the summary of a fetched story.
type StorySummary struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	PublishedAt      *string `json:"published_at"`
	FullSlug         string  `json:"full_slug"`
	ContentPresent   bool    `json:"content_present"`
	ContentComponent any     `json:"content_component"`
	Version          any     `json:"version"`
}

// AccessAttempt is the outcome of one scenario.  Status is 0 if the request
// did not reach the API.
type AccessAttempt struct {
	ScenarioName string            `json:"scenarioName"`
	ParamsUsed   map[string]string `json:"paramsUsed"`
	Status       int               `json:"status"`
	ResponseData *StorySummary     `json:"responseData,omitempty"`
	ErrorDetails any               `json:"errorDetails,omitempty"`
}

// AccessReport is the result of DebugStoryAccess.
type AccessReport struct {
	StoryID     int64           `json:"storyId"`
	Draft       AccessDetails   `json:"accessibleAsDraftDetails"`
	Published   AccessDetails   `json:"accessibleAsPublishedDetails"`
	Issues      []string        `json:"issuesDetected"`
	Suggestions []string        `json:"suggestions"`
	Attempts    []AccessAttempt `json:"apiCallAttempts"`
}

// DebugStoryAccess fetches the story under each of the fixed parameter
// scenarios, one after another, and derives the issues and suggestions from
// the observed responses.  API failures are part of the report, the error is
// returned only if ctx is cancelled.
func (s *Session) DebugStoryAccess(ctx context.Context, id int64) (*AccessReport, error) {
	rep := &AccessReport{
		StoryID:     id,
		Issues:      []string{},
		Suggestions: []string{},
		Attempts:    make([]AccessAttempt, 0, len(accessScenarios)),
	}
	for _, sc := range accessScenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rep.Attempts = append(rep.Attempts, s.probe(ctx, rep, id, sc))
	}
	rep.analyse()
	rep.Issues = lo.Uniq(rep.Issues)
	rep.Suggestions = lo.Uniq(rep.Suggestions)
	return rep, nil
}

func (s *Session) probe(ctx context.Context, rep *AccessReport, id int64, sc scenario) AccessAttempt {
	used := make(map[string]string, len(sc.params)+1)
	q := params{}
	for k, v := range sc.params {
		used[k] = v
		q.setString(k, &v)
	}
	used["story_id"] = strconv.FormatInt(id, 10)
	at := AccessAttempt{ScenarioName: sc.name, ParamsUsed: used}

	resp, err := s.client.Send(ctx, client.Request{Method: http.MethodGet, Path: storyPath(id), Query: q.values()})
	if err != nil {
		s.log.DebugContext(ctx, "scenario failed", "scenario", sc.name, "error", err)
		if apiErr, ok := client.AsAPIError(err); ok {
			at.Status = apiErr.StatusCode
			at.ErrorDetails = errorDetails(apiErr.Body)
		} else {
			at.ErrorDetails = err.Error()
		}
		return at
	}
	at.Status = resp.StatusCode

	var probe storyProbe
	if err := resp.Decode(&probe); err != nil {
		at.ErrorDetails = err.Error()
		return at
	}
	st := probe.Story
	contentPresent := len(st.Content) > 0
	at.ResponseData = &StorySummary{
		ID:               st.ID,
		Name:             st.Name,
		PublishedAt:      st.PublishedAt,
		FullSlug:         st.FullSlug,
		ContentPresent:   contentPresent,
		ContentComponent: st.Content["component"],
		Version:          st.Version,
	}

	if sc.published() {
		rep.Published.observe(sc.name, contentPresent)
		if st.PublishedAt == nil {
			rep.Issues = append(rep.Issues, fmt.Sprintf("Scenario '%s': fetched as published but no published_at.", sc.name))
		}
	} else {
		rep.Draft.observe(sc.name, contentPresent)
	}
	if sc.withContent() && !contentPresent {
		rep.Issues = append(rep.Issues, fmt.Sprintf("Scenario '%s': with_content=1 used but no content present.", sc.name))
	}
	return at
}

func (rep *AccessReport) analyse() {
	draft, pub := rep.Draft, rep.Published
	switch {
	case draft.Accessible && !pub.Accessible:
		rep.Suggestions = append(rep.Suggestions, "Accessible in draft but not published. Might be unpublished.")
	case pub.Accessible && !draft.Accessible:
		rep.Issues = append(rep.Issues, "Accessible in published but not draft.")
	case draft.Accessible && pub.Accessible:
		if draft.ContentPresent && !pub.ContentPresent {
			rep.Suggestions = append(rep.Suggestions, "Published version doesn't include content; try with_content=1.")
		}
		if pub.ContentPresent && !draft.ContentPresent {
			rep.Suggestions = append(rep.Suggestions, "Draft version doesn't include content; try with_content=1.")
		}
	default:
		rep.Issues = append(rep.Issues, "Story not accessible in any scenario.")
		rep.Suggestions = append(rep.Suggestions, "Check story ID and token permissions.")
	}

	if lo.EveryBy(rep.Attempts, func(a AccessAttempt) bool { return a.Status == http.StatusNotFound }) {
		rep.Issues = append(rep.Issues, "All attempts returned 404 Not Found.")
		rep.Suggestions = append(rep.Suggestions, "Verify the story exists and isn't deleted.")
	}
	if lo.SomeBy(rep.Attempts, func(a AccessAttempt) bool { return a.Status == http.StatusForbidden }) {
		rep.Issues = append(rep.Issues, "One or more attempts resulted in 403 Forbidden.")
		rep.Suggestions = append(rep.Suggestions, "Check that your API token has proper permissions.")
	}
}

// errorDetails returns the parsed JSON error body, or the body text if it is
// not JSON.
func errorDetails(body string) any {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return body
	}
	return v
}
