package twitter

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Patterns the web app is known to embed in its bootstrap documents.
var (
	bearerTokenRe = regexp.MustCompile(`"([a-zA-Z0-9%]{104})"`)
	metadataRe    = regexp.MustCompile(`window\.__META_DATA__=(\{.+?\});`)
	guestCookieRe = regexp.MustCompile(`document\.cookie="(gt=.+?)";`)
)

// bootstrapTarget is everything the web-app HTML shell yields for credential
// bootstrap.
type bootstrapTarget struct {
	// ScriptURL points at the main script bundle carrying the bearer token.
	ScriptURL string
	// GuestToken is the gt cookie value assigned by an inline script.
	GuestToken string
	// CookieFetchTime is cookies.fetchedTime from the embedded
	// window.__META_DATA__ blob, in milliseconds since the epoch.
	CookieFetchTime int64
}

// parseBootstrapTarget scans the <script> elements of the web-app shell.
// A src containing "main" names the script bundle, an inline
// document.cookie="gt=...;" assignment carries the guest token, and the
// __META_DATA__ blob carries the cookie fetch timestamp. All three must be
// present.
func parseBootstrapTarget(shell string) (*bootstrapTarget, error) {
	doc, err := html.Parse(strings.NewReader(shell))
	if err != nil {
		return nil, &BootstrapParseError{Missing: "parsable HTML document"}
	}

	var target bootstrapTarget
	haveMetadata := false

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.Script {
			continue
		}
		if src := attrValue(n, "src"); src != "" {
			if strings.Contains(src, "main") {
				target.ScriptURL = src
			}
			continue
		}

		text := innerText(n)
		if m := metadataRe.FindStringSubmatch(text); m != nil {
			var meta struct {
				Cookies struct {
					FetchedTime int64 `json:"fetchedTime"`
				} `json:"cookies"`
			}
			if json.Unmarshal([]byte(m[1]), &meta) == nil {
				target.CookieFetchTime = meta.Cookies.FetchedTime
				haveMetadata = true
			}
			continue
		}
		if m := guestCookieRe.FindStringSubmatch(text); m != nil {
			target.GuestToken = guestTokenFromCookie(m[1])
		}
	}

	switch {
	case target.ScriptURL == "":
		return nil, &BootstrapParseError{Missing: "main script src"}
	case target.GuestToken == "":
		return nil, &BootstrapParseError{Missing: "gt guest cookie"}
	case !haveMetadata:
		return nil, &BootstrapParseError{Missing: "__META_DATA__ blob"}
	}
	return &target, nil
}

// parseBearerToken finds the web app's public bearer token in the main script
// bundle: a quoted 104-character [a-zA-Z0-9%] literal.
func parseBearerToken(source string) (string, error) {
	m := bearerTokenRe.FindStringSubmatch(source)
	if m == nil {
		return "", &BootstrapParseError{Missing: "bearer token literal"}
	}
	return m[1], nil
}

// guestTokenFromCookie cookie-parses a raw "gt=..." assignment and returns
// the gt value, or "" if it cannot be parsed. The assignment uses Set-Cookie
// syntax (attributes like Max-Age and Secure follow the pair).
func guestTokenFromCookie(raw string) string {
	resp := http.Response{Header: http.Header{"Set-Cookie": []string{raw}}}
	for _, c := range resp.Cookies() {
		if c.Name == "gt" {
			return c.Value
		}
	}
	return ""
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
