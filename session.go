package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"strings"
	"time"
)

// Session is a guest-credentialed handle on the web API.
//
// Open must complete before any read operation is issued; the default header
// set is written once during bootstrap and is read-only afterward, so a
// session must not run Open concurrently with reads. Independent sessions
// share no state and may run in parallel.
type Session struct {
	transport Transport
	userAgent string

	ready       bool
	bearerToken string
	guestToken  string
	headers     map[string]string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTransport injects a transport, replacing the default stealth client.
func WithTransport(t Transport) SessionOption {
	return func(s *Session) { s.transport = t }
}

// WithUserAgent overrides the presented User-Agent.
func WithUserAgent(ua string) SessionOption {
	return func(s *Session) { s.userAgent = ua }
}

// NewSession creates an unopened session.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.transport == nil {
		t, err := NewStealthTransport("")
		if err != nil {
			return nil, err
		}
		s.transport = t
	}
	return s, nil
}

// Open bootstraps anonymous credentials: it fetches the web-app shell,
// extracts the main script URL and the guest token, fetches the script,
// extracts the bearer token, and installs both as the session's default
// headers. A failed Open leaves the session unopened and may be retried.
func (s *Session) Open(ctx context.Context) error {
	shell, err := s.fetchDocument(ctx, webappURL)
	if err != nil {
		return fmt.Errorf("fetch web-app shell: %w", err)
	}
	target, err := parseBootstrapTarget(shell)
	if err != nil {
		return err
	}

	script, err := s.fetchDocument(ctx, target.ScriptURL)
	if err != nil {
		return fmt.Errorf("fetch script bundle: %w", err)
	}
	bearer, err := parseBearerToken(script)
	if err != nil {
		return err
	}

	headers := guestHeaders(bearer, target.GuestToken, s.userAgent)
	if err := s.sendCookiesLoadedEvent(ctx, headers, target.CookieFetchTime); err != nil {
		return err
	}

	s.bearerToken = bearer
	s.guestToken = target.GuestToken
	s.headers = headers
	s.ready = true
	slog.Debug("guest session ready", slog.String("script_url", target.ScriptURL))
	return nil
}

// GetUserByScreenName resolves a profile by handle.
func (s *Session) GetUserByScreenName(ctx context.Context, handle string) (*User, error) {
	if !s.ready {
		return nil, ErrSessionNotReady
	}
	body, err := s.get(ctx, userByScreenNameRequest(handle))
	if err != nil {
		return nil, fmt.Errorf("UserByScreenName: %w", err)
	}
	return parseUserEnvelope(body)
}

// GetUserTweets fetches one page of a user's timeline. A count <= 0 requests
// the default page size and an empty cursor requests the head of the
// timeline. The returned page's CursorBottom is the cursor for the next
// page; an empty page means the timeline is exhausted.
func (s *Session) GetUserTweets(ctx context.Context, userID string, count int, cursor string, includePinned bool) (*TimelinePage, error) {
	if !s.ready {
		return nil, ErrSessionNotReady
	}
	body, err := s.get(ctx, userTweetsRequest(userID, count, cursor))
	if err != nil {
		return nil, fmt.Errorf("UserTweets: %w", err)
	}
	return decodeTimeline(body, includePinned)
}

// fetchDocument GETs a bootstrap document with pre-credential headers.
func (s *Session) fetchDocument(ctx context.Context, docURL string) (string, error) {
	body, status, err := s.transport.Do(ctx, "GET", docURL, bootstrapHeaders(s.userAgent), nil)
	if err != nil {
		return "", err
	}
	if status != 200 {
		return "", &UnexpectedStatusError{Status: status}
	}
	return string(body), nil
}

// get issues a credentialed GET and returns the body of a 200 response.
func (s *Session) get(ctx context.Context, reqURL string) ([]byte, error) {
	body, status, err := s.transport.Do(ctx, "GET", reqURL, s.headers, nil)
	if err != nil {
		return nil, err
	}
	if status != 200 {
		slog.Warn("non-200 response", slog.Int("status", status))
		return nil, &UnexpectedStatusError{Status: status}
	}
	return body, nil
}

// sendCookiesLoadedEvent posts the rweb:cookiesMetadata:load perf beacon the
// web client emits once its cookies are in place. cookieFetchTime comes from
// the shell's __META_DATA__ blob.
func (s *Session) sendCookiesLoadedEvent(ctx context.Context, headers map[string]string, cookieFetchTime int64) error {
	eventValue := time.Now().UnixMilli() - cookieFetchTime
	eventLog, _ := json.Marshal([]map[string]any{{
		"description": "rweb:cookiesMetadata:load",
		"product":     "rweb",
		"event_value": eventValue,
	}})
	form := url.Values{
		"category": {"perftown"},
		"log":      {string(eventLog)},
	}

	h := maps.Clone(headers)
	h["content-type"] = "application/x-www-form-urlencoded"
	_, status, err := s.transport.Do(ctx, "POST", twitterAPIURL+"/1.1/jot/client_event.json", h, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("client event: %w", err)
	}
	if status != 200 {
		return &UnexpectedStatusError{Status: status}
	}
	return nil
}
