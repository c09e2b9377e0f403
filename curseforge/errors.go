package curseforge

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// NotFoundError reports a 404 for a specific resource.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Id)
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Resource == t.Resource && e.Id == t.Id
}

// ApiError covers transport failures and unexpected status codes.
// StatusCode is zero when the request never produced a response.
type ApiError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *ApiError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed with status code %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *ApiError) Is(target error) bool {
	t, ok := target.(*ApiError)
	if !ok {
		return false
	}
	return e.Operation == t.Operation && e.StatusCode == t.StatusCode
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a JSON decoding failure and keeps the offending payload
// so callers can inspect what the API actually sent.
type DecodeError struct {
	Operation string
	Body      []byte
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s returned a response that could not be decoded: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type FingerprintApiError struct {
	Lookup []int
	Err    error
}

func (fingerprintError *FingerprintApiError) Error() string {
	return fmt.Sprintf("Fingerprints for %d cannot be fetched due to an api error: %v", fingerprintError.Lookup, fingerprintError.Err)
}

func (fingerprintError *FingerprintApiError) Is(target error) bool {
	var t *FingerprintApiError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return reflect.DeepEqual(t.Lookup, fingerprintError.Lookup) && errors.Is(t.Err, fingerprintError.Err)
}

func (fingerprintError *FingerprintApiError) Unwrap() error {
	return fingerprintError.Err
}
