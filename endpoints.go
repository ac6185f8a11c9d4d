package twitter

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	webappURL     = "https://x.com"
	graphqlBase   = "https://x.com/i/api/graphql"
	twitterAPIURL = "https://api.twitter.com"
)

// defaultTweetCount is the page size requested when the caller passes none.
const defaultTweetCount = 40

// Endpoint holds the operation ID, name, and per-operation feature flags.
type Endpoint struct {
	ID       string
	Name     string
	Features map[string]any
}

// URL returns the full URL for this endpoint.
func (e Endpoint) URL() string {
	return fmt.Sprintf("%s/%s/%s", graphqlBase, e.ID, e.Name)
}

// Endpoints maps operation names to their current GraphQL IDs and feature
// flags. Each flag set is an exact-match blob the API requires echoed back;
// a stale or incomplete set is rejected remotely, so a version bump replaces
// the whole map rather than toggling individual flags.
var Endpoints = map[string]Endpoint{
	"UserByScreenName": {ID: "pVrmNaXcxPjisIvKtLDMEA", Name: "UserByScreenName", Features: userByScreenNameFeatures()},
	"UserTweets":       {ID: "WzJjibAcDa-oCjCcLOotcg", Name: "UserTweets", Features: userTweetsFeatures()},
}

func userByScreenNameFeatures() map[string]any {
	return map[string]any{
		"blue_business_profile_image_shape_enabled":                         true,
		"creator_subscriptions_tweet_preview_api_enabled":                   false,
		"highlights_tweets_tab_ui_enabled":                                  false,
		"responsive_web_graphql_exclude_directive_enabled":                  true,
		"responsive_web_graphql_skip_user_profile_image_extensions_enabled": false,
		"responsive_web_graphql_timeline_navigation_enabled":                true,
		"verified_phone_label_enabled":                                      false,
	}
}

func userTweetsFeatures() map[string]any {
	return map[string]any{
		"blue_business_profile_image_shape_enabled":                               true,
		"creator_subscriptions_tweet_preview_api_enabled":                         false,
		"freedom_of_speech_not_reach_fetch_enabled":                               true,
		"graphql_is_translatable_rweb_tweet_is_translatable_enabled":              true,
		"interactive_text_enabled":                                                true,
		"longform_notetweets_consumption_enabled":                                 true,
		"longform_notetweets_inline_media_enabled":                                false,
		"longform_notetweets_rich_text_read_enabled":                              true,
		"responsive_web_edit_tweet_api_enabled":                                   true,
		"responsive_web_enhance_cards_enabled":                                    false,
		"responsive_web_graphql_exclude_directive_enabled":                        true,
		"responsive_web_graphql_skip_user_profile_image_extensions_enabled":       false,
		"responsive_web_graphql_timeline_navigation_enabled":                      true,
		"responsive_web_text_conversations_enabled":                               false,
		"rweb_lists_timeline_redesign_enabled":                                    false,
		"standardized_nudges_misinfo":                                             true,
		"tweet_awards_web_tipping_enabled":                                        false,
		"tweet_with_visibility_results_prefer_gql_limited_actions_policy_enabled": false,
		"tweetypie_unmention_optimization_enabled":                                true,
		"verified_phone_label_enabled":                                            false,
		"vibe_api_enabled":                                                        true,
		"view_counts_everywhere_api_enabled":                                      true,
	}
}

// userByScreenNameRequest builds the UserByScreenName GET URL for a handle.
func userByScreenNameRequest(handle string) string {
	variables := map[string]any{
		"screen_name": handle,
	}
	ep := Endpoints["UserByScreenName"]
	return addGraphQLParams(ep.URL(), variables, ep.Features)
}

// userTweetsRequest builds the UserTweets GET URL. A count <= 0 requests the
// default page size. An empty cursor omits the cursor variable entirely,
// which requests the head of the timeline.
func userTweetsRequest(userID string, count int, cursor string) string {
	if count <= 0 {
		count = defaultTweetCount
	}
	variables := map[string]any{
		"userId":                                 userID,
		"count":                                  count,
		"includePromotedContent":                 true,
		"withQuickPromoteEligibilityTweetFields": true,
		"withVoice":                              true,
		"withV2Timeline":                         true,
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}
	ep := Endpoints["UserTweets"]
	return addGraphQLParams(ep.URL(), variables, ep.Features)
}

// addGraphQLParams appends compact-JSON variables and features as query
// string values. The remote service treats both as opaque strings, so only
// completeness matters, not key order.
func addGraphQLParams(url string, variables, features map[string]any) string {
	v, _ := json.Marshal(variables)
	f, _ := json.Marshal(features)
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "variables=" + jsonEscape(v) + "&features=" + jsonEscape(f)
}

// jsonEscape percent-encodes the characters of a compact JSON value that are
// not safe in a query string.
func jsonEscape(b []byte) string {
	var result strings.Builder
	for _, ch := range string(b) {
		switch ch {
		case ' ':
			result.WriteString("%20")
		case '"':
			result.WriteString("%22")
		case '{':
			result.WriteString("%7B")
		case '}':
			result.WriteString("%7D")
		case '[':
			result.WriteString("%5B")
		case ']':
			result.WriteString("%5D")
		case ':':
			result.WriteString("%3A")
		case ',':
			result.WriteString("%2C")
		case '\'':
			result.WriteString("%27")
		case '|':
			result.WriteString("%7C")
		default:
			result.WriteRune(ch)
		}
	}
	return result.String()
}
