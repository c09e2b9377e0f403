package curseforge

// dataResponse wraps the single-field envelope the API uses for most
// endpoints. Operations unwrap it and return the data value directly.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// Page is one page of a paginated result set.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
