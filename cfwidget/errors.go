package cfwidget

import "fmt"

// ProjectNotFoundError reports that CFWidget does not know the project.
type ProjectNotFoundError struct {
	Lookup string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project not found on cfwidget: %s", e.Lookup)
}

func (e *ProjectNotFoundError) Is(target error) bool {
	t, ok := target.(*ProjectNotFoundError)
	if !ok {
		return false
	}
	return e.Lookup == t.Lookup
}

// ProjectPendingError reports a 202: CFWidget accepted the lookup and is
// still indexing the project. Retrying later should succeed.
type ProjectPendingError struct {
	Lookup string
}

func (e *ProjectPendingError) Error() string {
	return fmt.Sprintf("project is still being indexed by cfwidget: %s", e.Lookup)
}

func (e *ProjectPendingError) Is(target error) bool {
	t, ok := target.(*ProjectPendingError)
	if !ok {
		return false
	}
	return e.Lookup == t.Lookup
}

// ApiError covers transport failures and unexpected status codes.
type ApiError struct {
	Lookup     string
	StatusCode int
	Err        error
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("project cannot be fetched from cfwidget: %s", e.Lookup)
}

func (e *ApiError) Is(target error) bool {
	t, ok := target.(*ApiError)
	if !ok {
		return false
	}
	return e.Lookup == t.Lookup && e.StatusCode == t.StatusCode
}

func (e *ApiError) Unwrap() error {
	return e.Err
}
