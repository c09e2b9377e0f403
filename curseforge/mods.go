package curseforge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/meza/curseforge-go/internal/perf"

	"go.opentelemetry.io/otel/attribute"
)

// SearchMods fetches one page of search results.
func (curseforgeClient *Client) SearchMods(ctx context.Context, params *SearchModsParams) (*Page[Mod], error) {
	gameId := 0
	if params != nil {
		gameId = int(params.GameId)
	}
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mods.search", perf.WithAttributes(attribute.Int("game_id", gameId)))
	defer span.End()

	queryString, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	var page Page[Mod]
	if err := curseforgeClient.get(ctx, "search mods", "/mods/search", queryString, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// SearchModsAll walks every page of search results up to the API's result
// limit.
func (curseforgeClient *Client) SearchModsAll(ctx context.Context, params *SearchModsParams) ([]Mod, error) {
	pageParams := SearchModsParams{}
	if params != nil {
		pageParams = *params
	}

	return paginateAll(ctx, func(ctx context.Context, index int) (*Page[Mod], error) {
		pageParams.Index = index
		return curseforgeClient.SearchMods(ctx, &pageParams)
	})
}

// GetMod fetches a single mod by its id.
func (curseforgeClient *Client) GetMod(ctx context.Context, modId int) (*Mod, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.get", perf.WithAttributes(attribute.Int("mod_id", modId)))
	defer span.End()

	var response dataResponse[Mod]
	notFound := &NotFoundError{Resource: "mod", Id: strconv.Itoa(modId)}
	if err := curseforgeClient.get(ctx, "get mod", fmt.Sprintf("/mods/%d", modId), "", notFound, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}

// GetMods fetches several mods in a single call.
func (curseforgeClient *Client) GetMods(ctx context.Context, modIds []int) ([]Mod, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mods.get", perf.WithAttributes(attribute.Int("mod_count", len(modIds))))
	defer span.End()

	var response dataResponse[[]Mod]
	if err := curseforgeClient.post(ctx, "get mods", "/mods", getModsByIdsBody{ModIds: modIds}, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetFeaturedMods fetches the featured, popular, and recently updated mods
// for a game.
func (curseforgeClient *Client) GetFeaturedMods(ctx context.Context, body *FeaturedModsBody) (*FeaturedMods, error) {
	gameId := 0
	if body != nil {
		gameId = int(body.GameId)
	}
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mods.featured", perf.WithAttributes(attribute.Int("game_id", gameId)))
	defer span.End()

	requestBody := FeaturedModsBody{}
	if body != nil {
		requestBody = *body
	}
	if requestBody.ExcludedModIds == nil {
		requestBody.ExcludedModIds = make([]int, 0)
	}

	var response dataResponse[FeaturedMods]
	if err := curseforgeClient.post(ctx, "get featured mods", "/mods/featured", requestBody, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}

// GetModDescription fetches the HTML description of a mod.
func (curseforgeClient *Client) GetModDescription(ctx context.Context, modId int) (string, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.description", perf.WithAttributes(attribute.Int("mod_id", modId)))
	defer span.End()

	var response dataResponse[string]
	notFound := &NotFoundError{Resource: "mod", Id: strconv.Itoa(modId)}
	if err := curseforgeClient.get(ctx, "get mod description", fmt.Sprintf("/mods/%d/description", modId), "", notFound, &response); err != nil {
		return "", err
	}

	return response.Data, nil
}
