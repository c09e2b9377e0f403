package curseforge

import "context"

// PaginationResultsLimit is the hard ceiling the API places on paginated
// result sets: requests cannot page past the first 10,000 results.
// See https://docs.curseforge.com/#pagination-limits.
const PaginationResultsLimit = 10000

// paginateAll walks a paginated endpoint by advancing the index by each
// page's result count until the total count, capped by the API's result
// limit, is reached. The first failed page aborts the walk.
func paginateAll[T any](ctx context.Context, fetch func(ctx context.Context, index int) (*Page[T], error)) ([]T, error) {
	var items []T
	index := 0
	for {
		page, err := fetch(ctx, index)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Data...)
		if page.Pagination.ResultCount == 0 {
			break
		}

		index += page.Pagination.ResultCount
		total := min(page.Pagination.TotalCount, PaginationResultsLimit)
		if index >= total {
			break
		}
	}

	return items, nil
}
