package twitter

import (
	"errors"
	"fmt"
)

// ErrSessionNotReady is returned by read operations issued before Open has
// completed successfully.
var ErrSessionNotReady = errors.New("twitter: session not ready, call Open first")

// BootstrapParseError reports that an expected pattern was absent from the
// web-app HTML shell or its script bundle. The bootstrap documents are
// externally controlled and version-fragile, so this is the error to watch
// when the platform ships a new front end.
type BootstrapParseError struct {
	Missing string
}

func (e *BootstrapParseError) Error() string {
	return fmt.Sprintf("twitter: bootstrap parse: %s not found", e.Missing)
}

// UnexpectedStatusError reports a non-200 HTTP response. The body is not
// parsed in that case.
type UnexpectedStatusError struct {
	Status int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("twitter: unexpected HTTP status %d", e.Status)
}

// TweetDecodeError reports a malformed tweet or user node. Path names the
// offending node's location in the response document.
type TweetDecodeError struct {
	Path   string
	Reason string
}

func (e *TweetDecodeError) Error() string {
	return fmt.Sprintf("twitter: decode tweet at %s: %s", e.Path, e.Reason)
}

// TimelineDecodeError reports a timeline response whose instruction list
// cannot be assembled into a page.
type TimelineDecodeError struct {
	Reason string
}

func (e *TimelineDecodeError) Error() string {
	return fmt.Sprintf("twitter: decode timeline: %s", e.Reason)
}

// APIError is a GraphQL-level error returned inside an otherwise successful
// envelope.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter: API error: %s", e.Message)
}
