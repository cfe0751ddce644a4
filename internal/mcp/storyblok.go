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

import (
	"context"

	"github.com/joshuauaua/storyblok-mcp-server"
)

//go:generate mockgen -destination=mock_mcp/mock_storyblok.go -package=mock_mcp . Storyblok

// Storyblok is the set of space operations exposed as tools.  It is
// implemented by *storyblok.Session.
type Storyblok interface {
	SpaceID() string

	FetchStories(ctx context.Context, f storyblok.StoryFilter) (*storyblok.StoryList, error)
	GetStory(ctx context.Context, id int64) (map[string]any, error)
	CreateStory(ctx context.Context, ns storyblok.NewStory) (map[string]any, error)
	UpdateStory(ctx context.Context, id int64, u storyblok.StoryUpdate) (map[string]any, error)
	DeleteStory(ctx context.Context, id int64) (*storyblok.Message, error)
	PublishStory(ctx context.Context, id int64, lang string, releaseID *int64) (map[string]any, error)
	UnpublishStory(ctx context.Context, id int64, lang string) (map[string]any, error)
	StoryVersions(ctx context.Context, f storyblok.VersionFilter) (*storyblok.VersionList, error)
	RestoreStory(ctx context.Context, id, versionID int64) (map[string]any, error)
	CompareStoryVersions(ctx context.Context, id, versionV2 int64) (any, error)
	AITranslateStory(ctx context.Context, r storyblok.TranslateRequest) (map[string]any, error)
	UnpublishedDependencies(ctx context.Context, ids []int64, releaseID *int64) (map[string]any, error)

	ValidateStoryContent(ctx context.Context, component string, storyID *int64, content map[string]any) (*storyblok.ValidationResult, error)
	DebugStoryAccess(ctx context.Context, id int64) (*storyblok.AccessReport, error)

	BulkPublish(ctx context.Context, ids []int64) (*storyblok.BulkResult, error)
	BulkDelete(ctx context.Context, ids []int64) (*storyblok.BulkResult, error)
	BulkUpdate(ctx context.Context, updates []map[string]any) (*storyblok.BulkResult, error)
	BulkCreate(ctx context.Context, stories []map[string]any) (*storyblok.BulkResult, error)

	Tags(ctx context.Context) ([]storyblok.Tag, error)
	SyncTags(ctx context.Context, target []string, fn storyblok.ProgressFunc) (*storyblok.TagSyncResult, error)
	Components(ctx context.Context) ([]storyblok.Component, error)
	ComponentSchema(ctx context.Context, name string) (storyblok.Schema, error)
	InspectDatasources(ctx context.Context) ([]storyblok.DatasourceWithEntries, error)
}

var _ Storyblok = (*storyblok.Session)(nil)
