package curseforge

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockModPayload = `{
  "id": 238222,
  "gameId": 432,
  "name": "Just Enough Items",
  "slug": "jei",
  "links": {
    "websiteUrl": "https://www.curseforge.com/minecraft/mc-mods/jei",
    "wikiUrl": "",
    "issuesUrl": "https://github.com/mezz/JustEnoughItems/issues",
    "sourceUrl": "https://github.com/mezz/JustEnoughItems"
  },
  "summary": "View items and recipes",
  "status": 4,
  "downloadCount": 323568955,
  "isFeatured": true,
  "primaryCategoryId": 423,
  "categories": [],
  "classId": 6,
  "authors": [{"id": 32358, "name": "mezz", "url": "https://www.curseforge.com/members/mezz"}],
  "logo": {
    "id": 29069,
    "modId": 238222,
    "title": "jei logo",
    "description": "",
    "thumbnailUrl": "https://example.com/thumb.png",
    "url": "https://example.com/logo.png"
  },
  "screenshots": [],
  "mainFileId": 4712858,
  "latestFiles": [],
  "latestFilesIndexes": [
    {"gameVersion": "1.20.1", "fileId": 4712858, "filename": "jei-1.20.1.jar", "releaseType": 1, "gameVersionTypeId": 75125, "modLoader": 1}
  ],
  "dateCreated": "2015-07-04T19:14:07Z",
  "dateModified": "2023-10-01T12:00:00Z",
  "dateReleased": "2023-09-29T18:00:00Z",
  "allowModDistribution": true,
  "gamePopularityRank": 1,
  "isAvailable": true,
  "thumbsUpCount": 0
}`

func TestSearchMods(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mods/search", r.URL.Path)
		assert.Equal(t, "432", r.URL.Query().Get("gameId"))
		assert.Equal(t, "jei", r.URL.Query().Get("searchFilter"))
		assert.Equal(t, "2", r.URL.Query().Get("sortField"))
		assert.Equal(t, "desc", r.URL.Query().Get("sortOrder"))
		writeStringResponse(t, w, `{
  "data": [`+mockModPayload+`],
  "pagination": {"index": 0, "pageSize": 50, "resultCount": 1, "totalCount": 1}
}`)
	})

	client := newTestClient(t, mockServer)
	page, err := client.SearchMods(context.Background(), &SearchModsParams{
		GameId:       Minecraft,
		SearchFilter: "jei",
		SortField:    SortByPopularity,
		SortOrder:    Descending,
	})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	mod := page.Data[0]
	assert.Equal(t, 238222, mod.Id)
	assert.Equal(t, "Just Enough Items", mod.Name)
	assert.Equal(t, ModStatusApproved, mod.Status)
	assert.Equal(t, int64(323568955), mod.DownloadCount)
	require.NotNil(t, mod.Logo)
	assert.Equal(t, "https://example.com/logo.png", mod.Logo.Url)
	require.NotNil(t, mod.AllowModDistribution)
	assert.True(t, *mod.AllowModDistribution)
	require.Len(t, mod.LatestFilesIndexes, 1)
	assert.Equal(t, Forge, mod.LatestFilesIndexes[0].ModLoader)
}

func TestGetMod(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mods/238222", r.URL.Path)
		writeStringResponse(t, w, `{"data": `+mockModPayload+`}`)
	})

	client := newTestClient(t, mockServer)
	mod, err := client.GetMod(context.Background(), 238222)
	require.NoError(t, err)

	assert.Equal(t, "jei", mod.Slug)
	require.Len(t, mod.Authors, 1)
	assert.Equal(t, "mezz", mod.Authors[0].Name)
}

func TestGetModNotFound(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, mockServer)
	_, err := client.GetMod(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, &NotFoundError{Resource: "mod", Id: "1"})
}

func TestGetMods(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mods", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string][]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int{238222, 248787}, body["modIds"])

		writeStringResponse(t, w, `{"data": [`+mockModPayload+`]}`)
	})

	client := newTestClient(t, mockServer)
	mods, err := client.GetMods(context.Background(), []int{238222, 248787})
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.Equal(t, 238222, mods[0].Id)
}

func TestGetFeaturedMods(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mods/featured", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(432), body["gameId"])
		assert.Equal(t, []any{}, body["excludedModIds"])

		writeStringResponse(t, w, `{
  "data": {
    "featured": [`+mockModPayload+`],
    "popular": [],
    "recentlyUpdated": []
  }
}`)
	})

	client := newTestClient(t, mockServer)
	featured, err := client.GetFeaturedMods(context.Background(), &FeaturedModsBody{GameId: Minecraft})
	require.NoError(t, err)

	require.Len(t, featured.Featured, 1)
	assert.Empty(t, featured.Popular)
	assert.Empty(t, featured.RecentlyUpdated)
}

func TestGetModDescription(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mods/238222/description", r.URL.Path)
		writeStringResponse(t, w, `{"data": "<p>View items and recipes</p>"}`)
	})

	client := newTestClient(t, mockServer)
	description, err := client.GetModDescription(context.Background(), 238222)
	require.NoError(t, err)
	assert.Equal(t, "<p>View items and recipes</p>", description)
}
