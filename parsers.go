package twitter

import (
	"encoding/json"
	"fmt"
)

// maxTweetDepth bounds quote/retweet recursion. Organic chains stay in the
// single digits; anything deeper is hostile input.
const maxTweetDepth = 64

type userResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Legacy   struct {
		Name        string `json:"name"`
		ScreenName  string `json:"screen_name"`
		Description string `json:"description"`
	} `json:"legacy"`
}

type tweetResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Core     struct {
		UserResults struct {
			Result json.RawMessage `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
	Legacy             *tweetLegacy `json:"legacy"`
	QuotedStatusResult *struct {
		Result json.RawMessage `json:"result"`
	} `json:"quoted_status_result"`
	Tombstone *struct {
		Text struct {
			Text string `json:"text"`
		} `json:"text"`
	} `json:"tombstone"`
}

type tweetLegacy struct {
	FullText              *string `json:"full_text"`
	DisplayTextRange      []int   `json:"display_text_range"`
	RetweetedStatusResult *struct {
		Result json.RawMessage `json:"result"`
	} `json:"retweeted_status_result"`
}

// parseUserEnvelope parses a UserByScreenName response body.
func parseUserEnvelope(body []byte) (*User, error) {
	var raw struct {
		Data struct {
			User struct {
				Result json.RawMessage `json:"result"`
			} `json:"user"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal UserByScreenName: %w", err)
	}
	if len(raw.Errors) > 0 {
		return nil, &APIError{Message: raw.Errors[0].Message}
	}
	return parseUserResult(raw.Data.User.Result, "data.user.result")
}

// parseUserResult decodes one user result node.
func parseUserResult(node json.RawMessage, path string) (*User, error) {
	if len(node) == 0 || string(node) == "null" {
		return nil, &TweetDecodeError{Path: path, Reason: "missing user result"}
	}
	var r userResult
	if err := json.Unmarshal(node, &r); err != nil {
		return nil, &TweetDecodeError{Path: path, Reason: "malformed user result"}
	}
	if r.RestID == "" {
		return nil, &TweetDecodeError{Path: path, Reason: fmt.Sprintf("empty user rest_id (typename=%s)", r.TypeName)}
	}
	return &User{
		ID:          r.RestID,
		Handle:      r.Legacy.ScreenName,
		DisplayName: r.Legacy.Name,
		Description: r.Legacy.Description,
	}, nil
}

// parseTweetResult decodes one tweet result node into its Tweet variant,
// recursing into quoted and retweeted children. path names the node's
// location in the response document for error reporting.
//
// Tombstones are dispatched before anything else: a TweetTombstone node
// carries no legacy payload and none is read.
func parseTweetResult(node json.RawMessage, path string, depth int) (Tweet, error) {
	if depth > maxTweetDepth {
		return nil, &TweetDecodeError{Path: path, Reason: "quote/retweet nesting too deep"}
	}
	if len(node) == 0 || string(node) == "null" {
		return nil, &TweetDecodeError{Path: path, Reason: "missing tweet result"}
	}
	var r tweetResult
	if err := json.Unmarshal(node, &r); err != nil {
		return nil, &TweetDecodeError{Path: path, Reason: "malformed tweet result"}
	}

	if r.TypeName == "TweetTombstone" {
		t := &TombstoneTweet{}
		if r.Tombstone != nil {
			t.Notice = r.Tombstone.Text.Text
		}
		return t, nil
	}

	author, err := parseUserResult(r.Core.UserResults.Result, path+".core.user_results.result")
	if err != nil {
		return nil, err
	}
	if r.Legacy == nil {
		return nil, &TweetDecodeError{Path: path + ".legacy", Reason: "missing legacy payload"}
	}
	if r.Legacy.FullText == nil {
		return nil, &TweetDecodeError{Path: path + ".legacy.full_text", Reason: "missing full_text"}
	}
	if len(r.Legacy.DisplayTextRange) != 2 {
		return nil, &TweetDecodeError{Path: path + ".legacy.display_text_range", Reason: "expected a 2-element range"}
	}
	textRange := TextRange{Start: r.Legacy.DisplayTextRange[0], End: r.Legacy.DisplayTextRange[1]}

	if r.Legacy.RetweetedStatusResult != nil {
		child, err := parseTweetResult(r.Legacy.RetweetedStatusResult.Result, path+".legacy.retweeted_status_result.result", depth+1)
		if err != nil {
			return nil, err
		}
		// Author is the retweeting user; the child carries the original.
		return &Retweet{Author: *author, Retweeted: child}, nil
	}

	if r.QuotedStatusResult != nil {
		child, err := parseTweetResult(r.QuotedStatusResult.Result, path+".quoted_status_result.result", depth+1)
		if err != nil {
			return nil, err
		}
		return &QuoteTweet{Author: *author, Text: *r.Legacy.FullText, TextRange: textRange, Quoted: child}, nil
	}

	return &PlainTweet{Author: *author, Text: *r.Legacy.FullText, TextRange: textRange}, nil
}
