package curseforge

import (
	"context"

	"github.com/meza/curseforge-go/internal/perf"

	"go.opentelemetry.io/otel/attribute"
)

// GetCategories lists the categories of a game, optionally narrowed to a
// class. The endpoint is not paginated.
func (curseforgeClient *Client) GetCategories(ctx context.Context, params *CategoriesParams) ([]Category, error) {
	gameId := 0
	if params != nil {
		gameId = int(params.GameId)
	}
	ctx, span := perf.StartSpan(ctx, "api.curseforge.categories.list", perf.WithAttributes(attribute.Int("game_id", gameId)))
	defer span.End()

	queryString, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	var response dataResponse[[]Category]
	if err := curseforgeClient.get(ctx, "get categories", "/categories", queryString, nil, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
