package curseforge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/meza/curseforge-go/internal/perf"

	"go.opentelemetry.io/otel/attribute"
)

// GetGame fetches a single game by its id.
func (curseforgeClient *Client) GetGame(ctx context.Context, gameId GameId) (*Game, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.game.get", perf.WithAttributes(attribute.Int("game_id", int(gameId))))
	defer span.End()

	var response dataResponse[Game]
	notFound := &NotFoundError{Resource: "game", Id: strconv.Itoa(int(gameId))}
	if err := curseforgeClient.get(ctx, "get game", fmt.Sprintf("/games/%d", gameId), "", notFound, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}

// GetGames fetches one page of the game list.
func (curseforgeClient *Client) GetGames(ctx context.Context, params *GamesParams) (*Page[Game], error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.games.list")
	defer span.End()

	queryString, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	var page Page[Game]
	if err := curseforgeClient.get(ctx, "get games", "/games", queryString, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetGamesAll walks every page of the game list.
func (curseforgeClient *Client) GetGamesAll(ctx context.Context, params *GamesParams) ([]Game, error) {
	pageParams := GamesParams{}
	if params != nil {
		pageParams = *params
	}

	return paginateAll(ctx, func(ctx context.Context, index int) (*Page[Game], error) {
		pageParams.Index = index
		return curseforgeClient.GetGames(ctx, &pageParams)
	})
}

// GetGameVersions lists game version strings grouped by version type.
func (curseforgeClient *Client) GetGameVersions(ctx context.Context, gameId GameId) ([]GameVersionsByType, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.game.versions", perf.WithAttributes(attribute.Int("game_id", int(gameId))))
	defer span.End()

	var response dataResponse[[]GameVersionsByType]
	notFound := &NotFoundError{Resource: "game", Id: strconv.Itoa(int(gameId))}
	if err := curseforgeClient.get(ctx, "get game versions", fmt.Sprintf("/games/%d/versions", gameId), "", notFound, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetGameVersionTypes lists the version types for a game.
func (curseforgeClient *Client) GetGameVersionTypes(ctx context.Context, gameId GameId) ([]GameVersionType, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.game.versiontypes", perf.WithAttributes(attribute.Int("game_id", int(gameId))))
	defer span.End()

	var response dataResponse[[]GameVersionType]
	notFound := &NotFoundError{Resource: "game", Id: strconv.Itoa(int(gameId))}
	if err := curseforgeClient.get(ctx, "get game version types", fmt.Sprintf("/games/%d/version-types", gameId), "", notFound, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
