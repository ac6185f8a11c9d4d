package twitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserByScreenNameRequest(t *testing.T) {
	url := userByScreenNameRequest("hacksparrow")
	require.True(t, strings.HasPrefix(url, graphqlBase+"/pVrmNaXcxPjisIvKtLDMEA/UserByScreenName?"))
	require.Contains(t, url, "variables=")
	require.Contains(t, url, "features=")
	require.Contains(t, url, "%22screen_name%22%3A%22hacksparrow%22")
}

func TestUserTweetsRequestDefaults(t *testing.T) {
	url := userTweetsRequest("42", 0, "")
	require.True(t, strings.HasPrefix(url, graphqlBase+"/WzJjibAcDa-oCjCcLOotcg/UserTweets?"))
	require.Contains(t, url, "%22userId%22%3A%2242%22")
	require.Contains(t, url, "%22count%22%3A40")
	// The cursor key must be absent entirely on a head-of-timeline request.
	require.NotContains(t, url, "cursor")
}

func TestUserTweetsRequestWithCursor(t *testing.T) {
	url := userTweetsRequest("42", 100, "DAABCgABF0TOKEN")
	require.Contains(t, url, "%22count%22%3A100")
	require.Contains(t, url, "%22cursor%22%3A%22DAABCgABF0TOKEN%22")
}

func TestFeatureSetsAreComplete(t *testing.T) {
	// The remote API rejects requests whose flag set is incomplete, so the
	// blobs are pinned wholesale.
	require.Len(t, Endpoints["UserByScreenName"].Features, 7)
	require.Len(t, Endpoints["UserTweets"].Features, 22)

	// The two operations carry distinct sets.
	require.NotContains(t, Endpoints["UserByScreenName"].Features, "vibe_api_enabled")
	require.NotContains(t, Endpoints["UserTweets"].Features, "highlights_tweets_tab_ui_enabled")
}

func TestJSONEscape(t *testing.T) {
	require.Equal(t, "%7B%22a%22%3A%5B1%2C2%5D%7D", jsonEscape([]byte(`{"a":[1,2]}`)))
}
