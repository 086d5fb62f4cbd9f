package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrConfigurationMissing = errors.New("youtube api key is not configured")
	ErrNoComments           = errors.New("no comments found for video")
)

// UpstreamError wraps a failure talking to the YouTube API while fetching comments.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube api unavailable: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
