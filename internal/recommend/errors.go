package recommend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when no user identity was resolved.
var ErrUnauthorized = errors.New("unauthorized: no user identity")

// Upstream sources.
const (
	SourceCatalog   = "catalog"
	SourceResponses = "responses"
)

// UpstreamError indicates a collaborator could not be read.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
