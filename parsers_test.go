package twitter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func userNode(id, handle, name string) string {
	return fmt.Sprintf(`{
		"__typename": "User",
		"rest_id": %q,
		"legacy": {"name": %q, "screen_name": %q, "description": "bio of %s"}
	}`, id, name, handle, handle)
}

func plainTweetNode(id, author, text string) string {
	return fmt.Sprintf(`{
		"__typename": "Tweet",
		"rest_id": %q,
		"core": {"user_results": {"result": %s}},
		"legacy": {"full_text": %q, "display_text_range": [0, %d]}
	}`, id, userNode("u-"+author, author, author), text, len(text))
}

func TestParseUserEnvelope(t *testing.T) {
	body := fmt.Sprintf(`{"data":{"user":{"result":%s}}}`, userNode("42", "alice", "Alice"))
	user, err := parseUserEnvelope([]byte(body))
	require.NoError(t, err)
	require.Equal(t, &User{ID: "42", Handle: "alice", DisplayName: "Alice", Description: "bio of alice"}, user)
}

func TestParseUserEnvelopeAPIError(t *testing.T) {
	_, err := parseUserEnvelope([]byte(`{"errors":[{"message":"Rate limit exceeded"}]}`))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Rate limit exceeded", apiErr.Message)
}

func TestParseUserResultMissingRestID(t *testing.T) {
	_, err := parseUserResult([]byte(`{"__typename":"UserUnavailable"}`), "data.user.result")
	var decodeErr *TweetDecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, "data.user.result", decodeErr.Path)
}

func TestParseTweetResultPlain(t *testing.T) {
	tweet, err := parseTweetResult([]byte(plainTweetNode("1", "alice", "hello world")), "result", 0)
	require.NoError(t, err)

	plain, ok := tweet.(*PlainTweet)
	require.True(t, ok, "expected PlainTweet, got %T", tweet)
	require.Equal(t, "hello world", plain.Text)
	require.Equal(t, TextRange{Start: 0, End: 11}, plain.TextRange)
	require.Equal(t, "alice", plain.Author.Handle)
	require.Equal(t, "u-alice", plain.Author.ID)
}

func TestParseTweetResultTombstone(t *testing.T) {
	// A tombstone node has no legacy payload at all; decoding must succeed
	// without ever reaching for one.
	node := `{
		"__typename": "TweetTombstone",
		"tombstone": {"text": {"text": "This Tweet was deleted by the Tweet author."}}
	}`
	tweet, err := parseTweetResult([]byte(node), "result", 0)
	require.NoError(t, err)

	tomb, ok := tweet.(*TombstoneTweet)
	require.True(t, ok, "expected TombstoneTweet, got %T", tweet)
	require.Equal(t, "This Tweet was deleted by the Tweet author.", tomb.Notice)
}

func TestParseTweetResultRetweet(t *testing.T) {
	node := fmt.Sprintf(`{
		"__typename": "Tweet",
		"rest_id": "2",
		"core": {"user_results": {"result": %s}},
		"legacy": {
			"full_text": "RT @alice: hello world",
			"display_text_range": [0, 22],
			"retweeted_status_result": {"result": %s}
		}
	}`, userNode("u-bob", "bob", "Bob"), plainTweetNode("1", "alice", "hello world"))

	tweet, err := parseTweetResult([]byte(node), "result", 0)
	require.NoError(t, err)

	rt, ok := tweet.(*Retweet)
	require.True(t, ok, "expected Retweet, got %T", tweet)
	require.Equal(t, "bob", rt.Author.Handle)

	child, ok := rt.Retweeted.(*PlainTweet)
	require.True(t, ok, "expected PlainTweet child, got %T", rt.Retweeted)
	require.Equal(t, "alice", child.Author.Handle)
	require.Equal(t, "hello world", child.Text)
}

func TestParseTweetResultQuoteOfTombstone(t *testing.T) {
	node := fmt.Sprintf(`{
		"__typename": "Tweet",
		"rest_id": "3",
		"core": {"user_results": {"result": %s}},
		"legacy": {"full_text": "look at this", "display_text_range": [0, 12]},
		"quoted_status_result": {"result": {"__typename": "TweetTombstone"}}
	}`, userNode("u-carol", "carol", "Carol"))

	tweet, err := parseTweetResult([]byte(node), "result", 0)
	require.NoError(t, err)

	quote, ok := tweet.(*QuoteTweet)
	require.True(t, ok, "expected QuoteTweet, got %T", tweet)
	require.Equal(t, "look at this", quote.Text)
	require.IsType(t, &TombstoneTweet{}, quote.Quoted)
}

func TestParseTweetResultRetweetOfQuote(t *testing.T) {
	quoted := plainTweetNode("1", "alice", "hello world")
	quote := fmt.Sprintf(`{
		"__typename": "Tweet",
		"rest_id": "2",
		"core": {"user_results": {"result": %s}},
		"legacy": {"full_text": "look", "display_text_range": [0, 4]},
		"quoted_status_result": {"result": %s}
	}`, userNode("u-carol", "carol", "Carol"), quoted)
	node := fmt.Sprintf(`{
		"__typename": "Tweet",
		"rest_id": "3",
		"core": {"user_results": {"result": %s}},
		"legacy": {
			"full_text": "RT @carol: look",
			"display_text_range": [0, 15],
			"retweeted_status_result": {"result": %s}
		}
	}`, userNode("u-bob", "bob", "Bob"), quote)

	tweet, err := parseTweetResult([]byte(node), "result", 0)
	require.NoError(t, err)

	rt := tweet.(*Retweet)
	inner, ok := rt.Retweeted.(*QuoteTweet)
	require.True(t, ok, "expected QuoteTweet child, got %T", rt.Retweeted)
	leaf, ok := inner.Quoted.(*PlainTweet)
	require.True(t, ok)
	require.Equal(t, "alice", leaf.Author.Handle)
}

func TestParseTweetResultMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		node     string
		pathPart string
	}{
		{
			name:     "no author",
			node:     `{"__typename":"Tweet","rest_id":"1","legacy":{"full_text":"x","display_text_range":[0,1]}}`,
			pathPart: "core.user_results.result",
		},
		{
			name:     "no legacy",
			node:     fmt.Sprintf(`{"__typename":"Tweet","rest_id":"1","core":{"user_results":{"result":%s}}}`, userNode("u-a", "a", "A")),
			pathPart: ".legacy",
		},
		{
			name:     "no full_text",
			node:     fmt.Sprintf(`{"__typename":"Tweet","rest_id":"1","core":{"user_results":{"result":%s}},"legacy":{"display_text_range":[0,1]}}`, userNode("u-a", "a", "A")),
			pathPart: ".legacy.full_text",
		},
		{
			name:     "bad range",
			node:     fmt.Sprintf(`{"__typename":"Tweet","rest_id":"1","core":{"user_results":{"result":%s}},"legacy":{"full_text":"x","display_text_range":[0]}}`, userNode("u-a", "a", "A")),
			pathPart: ".legacy.display_text_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTweetResult([]byte(tt.node), "result", 0)
			var decodeErr *TweetDecodeError
			require.True(t, errors.As(err, &decodeErr), "expected TweetDecodeError, got %v", err)
			require.Contains(t, decodeErr.Path, tt.pathPart)
		})
	}
}

func TestParseTweetResultDepthGuard(t *testing.T) {
	node := plainTweetNode("0", "alice", "leaf")
	for i := 0; i < maxTweetDepth+10; i++ {
		node = fmt.Sprintf(`{
			"__typename": "Tweet",
			"rest_id": "r%d",
			"core": {"user_results": {"result": %s}},
			"legacy": {
				"full_text": "RT",
				"display_text_range": [0, 2],
				"retweeted_status_result": {"result": %s}
			}
		}`, i, userNode("u-bob", "bob", "Bob"), node)
	}

	_, err := parseTweetResult([]byte(node), "result", 0)
	var decodeErr *TweetDecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Contains(t, decodeErr.Reason, "nesting too deep")
}
