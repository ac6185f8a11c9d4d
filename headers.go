package twitter

// defaultUserAgent is the User-Agent presented when none is configured.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// bootstrapHeaders is the browser-shaped header set for fetching the web-app
// shell and script bundle, before any credentials exist.
func bootstrapHeaders(userAgent string) map[string]string {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return map[string]string{
		"user-agent":      userAgent,
		"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"accept-language": "en-US,en;q=0.9",
		"accept-encoding": "gzip, deflate, br",
	}
}

// guestHeaders is the default header set installed on a session once
// bootstrap has produced the bearer and guest tokens.
func guestHeaders(bearerToken, guestToken, userAgent string) map[string]string {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return map[string]string{
		"authorization":             "Bearer " + bearerToken,
		"x-guest-token":             guestToken,
		"x-twitter-active-user":     "yes",
		"x-twitter-client-language": "en",
		"content-type":              "application/json",
		"user-agent":                userAgent,
		"accept":                    "*/*",
		"accept-language":           "en-US,en;q=0.9",
		"accept-encoding":           "gzip, deflate, br",
		"referer":                   webappURL + "/",
		"origin":                    webappURL,
	}
}

// webHeaderOrder keeps the header order consistent with the browser
// fingerprint the transport presents.
var webHeaderOrder = []string{
	"authorization",
	"content-type",
	"x-guest-token",
	"x-twitter-active-user",
	"x-twitter-client-language",
	"sec-fetch-dest",
	"sec-fetch-mode",
	"sec-fetch-site",
	"user-agent",
	"accept",
	"accept-language",
	"accept-encoding",
	"referer",
	"origin",
}
