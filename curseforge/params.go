package curseforge

import (
	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

// SearchSortField selects the ordering of search results. The API encodes it
// as an integer.
type SearchSortField int

const (
	SortByFeatured       SearchSortField = 1
	SortByPopularity     SearchSortField = 2
	SortByLastUpdated    SearchSortField = 3
	SortByName           SearchSortField = 4
	SortByAuthor         SearchSortField = 5
	SortByTotalDownloads SearchSortField = 6
	SortByCategory       SearchSortField = 7
	SortByGameVersion    SearchSortField = 8
)

// SortOrder is string-encoded on the wire, unlike the other enums.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

type GamesParams struct {
	Index    int `url:"index,omitempty"`
	PageSize int `url:"pageSize,omitempty"`
}

type CategoriesParams struct {
	GameId  GameId `url:"gameId"`
	ClassId int    `url:"classId,omitempty"`
	IsClass bool   `url:"classesOnly,omitempty"`
}

type SearchModsParams struct {
	GameId            GameId          `url:"gameId"`
	ClassId           int             `url:"classId,omitempty"`
	CategoryId        int             `url:"categoryId,omitempty"`
	GameVersion       string          `url:"gameVersion,omitempty"`
	SearchFilter      string          `url:"searchFilter,omitempty"`
	SortField         SearchSortField `url:"sortField,omitempty"`
	SortOrder         SortOrder       `url:"sortOrder,omitempty"`
	ModLoaderType     ModLoaderType   `url:"modLoaderType,omitempty"`
	GameVersionTypeId int             `url:"gameVersionTypeId,omitempty"`
	AuthorId          int             `url:"authorId,omitempty"`
	Slug              string          `url:"slug,omitempty"`
	Index             int             `url:"index,omitempty"`
	PageSize          int             `url:"pageSize,omitempty"`
}

type ModFilesParams struct {
	GameVersion       string        `url:"gameVersion,omitempty"`
	ModLoaderType     ModLoaderType `url:"modLoaderType,omitempty"`
	GameVersionTypeId int           `url:"gameVersionTypeId,omitempty"`
	Index             int           `url:"index,omitempty"`
	PageSize          int           `url:"pageSize,omitempty"`
}

// Request bodies for the POST endpoints.

type getModsByIdsBody struct {
	ModIds []int `json:"modIds"`
}

type getFilesBody struct {
	FileIds []int `json:"fileIds"`
}

type FeaturedModsBody struct {
	GameId            GameId `json:"gameId"`
	ExcludedModIds    []int  `json:"excludedModIds"`
	GameVersionTypeId int    `json:"gameVersionTypeId,omitempty"`
}

// encodeParams serializes a params struct into a query string. Zero-valued
// optional fields are omitted, which also drops ModLoaderType Any on purpose.
func encodeParams(params any) (string, error) {
	if params == nil {
		return "", nil
	}

	values, err := query.Values(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode query parameters")
	}
	return values.Encode(), nil
}
