package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOnlyReturnsPublishedContentWithMeta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	published := env.createContent(t, "Published guide", model.StatusPublish)
	draft := env.createContent(t, "Draft guide", model.StatusDraft)
	env.createMeta(t, &model.ResourceMeta{ContentID: published.ID, ResourceType: model.TypePDF})
	env.createMeta(t, &model.ResourceMeta{ContentID: draft.ID})

	result, err := env.query.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, published.ID, result.Items[0].ID)
	assert.Equal(t, "Published guide", result.Items[0].Title)
	assert.EqualValues(t, 1, result.Total)
}

func TestListUsesSettingsDefaultPerPage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		item := env.createContent(t, "Item", model.StatusPublish)
		env.createMeta(t, &model.ResourceMeta{ContentID: item.ID})
	}

	result, err := env.query.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 12, result.PerPage)
	assert.Len(t, result.Items, 12)
	assert.EqualValues(t, 15, result.Total)
	assert.Equal(t, 2, result.TotalPages)
}

func TestListClampsPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.createContent(t, "Item", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: item.ID})

	result, err := env.query.List(ctx, ListParams{Page: -3, PerPage: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PerPage)
}

func TestListTreatsUnknownEnumsAsNoFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	video := env.createContent(t, "Video", model.StatusPublish)
	article := env.createContent(t, "Article", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: video.ID, ResourceType: model.TypeVideo})
	env.createMeta(t, &model.ResourceMeta{ContentID: article.ID, ResourceType: model.TypeArticle})

	result, err := env.query.List(ctx, ListParams{Type: "webinar", Difficulty: "expert"})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	result, err = env.query.List(ctx, ListParams{Type: "video"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, video.ID, result.Items[0].ID)
}

func TestListFiltersByCategorySlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	golang := model.Term{Name: "Go", Slug: "go", Taxonomy: model.TaxonomyCategory}
	inCategory := env.createContent(t, "In category", model.StatusPublish, golang)
	outside := env.createContent(t, "Outside", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: inCategory.ID})
	env.createMeta(t, &model.ResourceMeta{ContentID: outside.ID})

	result, err := env.query.List(ctx, ListParams{Category: "go"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, inCategory.ID, result.Items[0].ID)

	result, err = env.query.List(ctx, ListParams{Category: "missing"})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Total)
}

func TestListOrdersByDownloadCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low := env.createContent(t, "Low", model.StatusPublish)
	high := env.createContent(t, "High", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: low.ID, DownloadCount: 2})
	env.createMeta(t, &model.ResourceMeta{ContentID: high.ID, DownloadCount: 50})

	result, err := env.query.List(ctx, ListParams{OrderBy: "download_count", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, high.ID, result.Items[0].ID)

	result, err = env.query.List(ctx, ListParams{OrderBy: "download_count", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, low.ID, result.Items[0].ID)
}

func TestGetByContentIDSplitsTermsAndMetaFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	terms := []model.Term{
		{Name: "Go", Slug: "go", Taxonomy: model.TaxonomyCategory},
		{Name: "Tutorial", Slug: "tutorial", Taxonomy: model.TaxonomyTag},
	}
	item := env.createContent(t, "Guide", model.StatusPublish, terms...)
	env.createMeta(t, &model.ResourceMeta{
		ContentID:       item.ID,
		ResourceURL:     "https://example.com/guide.pdf",
		ResourceType:    model.TypePDF,
		DifficultyLevel: model.DifficultyIntermediate,
		DurationMinutes: 30,
		DownloadCount:   7,
		IsFeatured:      true,
	})

	resource, err := env.query.GetByContentID(ctx, item.ID)
	require.NoError(t, err)

	require.Len(t, resource.Categories, 1)
	assert.Equal(t, "go", resource.Categories[0].Slug)
	require.Len(t, resource.Tags, 1)
	assert.Equal(t, "tutorial", resource.Tags[0].Slug)

	require.NotNil(t, resource.ResourceURL)
	assert.Equal(t, "https://example.com/guide.pdf", *resource.ResourceURL)
	require.NotNil(t, resource.DurationMinutes)
	assert.Equal(t, 30, *resource.DurationMinutes)
	assert.EqualValues(t, 7, resource.DownloadCount)
	assert.True(t, resource.IsFeatured)
}

func TestGetByContentIDWithoutMeta(t *testing.T) {
	env := newTestEnv(t)

	item := env.createContent(t, "Bare content", model.StatusPublish)

	resource, err := env.query.GetByContentID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Nil(t, resource.ResourceURL)
	assert.Nil(t, resource.ResourceType)
	assert.Nil(t, resource.DifficultyLevel)
	assert.Zero(t, resource.DownloadCount)
}

func TestGetByContentIDRejectsDraftsAndUnknownIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft := env.createContent(t, "Draft", model.StatusDraft)

	_, err := env.query.GetByContentID(ctx, draft.ID)
	assert.ErrorIs(t, err, util.ErrResourceNotFound)

	_, err = env.query.GetByContentID(ctx, 9999)
	assert.ErrorIs(t, err, util.ErrResourceNotFound)
}
