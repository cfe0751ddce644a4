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

import (
	"context"
	"net/url"
	"strconv"
)

type Datasource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type DatasourceEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DatasourceWithEntries is a datasource with its entries.  Error is set if
// the entries could not be fetched.
type DatasourceWithEntries struct {
	Datasource
	Entries []DatasourceEntry `json:"entries"`
	Error   string            `json:"error,omitempty"`
}

// Datasources lists the datasources of the space.
func (s *Session) Datasources(ctx context.Context) ([]Datasource, error) {
	var resp struct {
		Datasources []Datasource `json:"datasources"`
	}
	if err := s.client.Get(ctx, "/datasources", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Datasources, nil
}

// DatasourceEntries lists the entries of the datasource id.
func (s *Session) DatasourceEntries(ctx context.Context, id int64) ([]DatasourceEntry, error) {
	var resp struct {
		Entries []DatasourceEntry `json:"datasource_entries"`
	}
	q := url.Values{"datasource_id": {strconv.FormatInt(id, 10)}}
	if err := s.client.Get(ctx, "/datasource_entries", q, &resp); err != nil {
		return nil, err
	}
	if resp.Entries == nil {
		resp.Entries = []DatasourceEntry{}
	}
	return resp.Entries, nil
}

// InspectDatasources lists the datasources and then the entries of each one,
// sequentially.  A failure to fetch the entries is recorded on the
// datasource.
func (s *Session) InspectDatasources(ctx context.Context) ([]DatasourceWithEntries, error) {
	dss, err := s.Datasources(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]DatasourceWithEntries, 0, len(dss))
	for _, ds := range dss {
		if err := ctx.Err(); err != nil {
			return ret, err
		}
		dwe := DatasourceWithEntries{Datasource: ds, Entries: []DatasourceEntry{}}
		entries, err := s.DatasourceEntries(ctx, ds.ID)
		if err != nil {
			s.log.WarnContext(ctx, "failed to fetch datasource entries", "datasource_id", ds.ID, "error", err)
			dwe.Error = err.Error()
		} else {
			dwe.Entries = entries
		}
		ret = append(ret, dwe)
	}
	return ret, nil
}
