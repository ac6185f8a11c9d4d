package twitter

import (
	"encoding/json"
	"fmt"
)

type timelineObj struct {
	Instructions []timelineInstruction `json:"instructions"`
}

type timelineInstruction struct {
	Type    string              `json:"type"`
	Entries []timelineEntryNode `json:"entries"`
	Entry   *timelineEntryNode  `json:"entry"`
}

type timelineEntryNode struct {
	EntryID string          `json:"entryId"`
	Content timelineContent `json:"content"`
}

type timelineContent struct {
	ItemContent *timelineItemContent `json:"itemContent"`
	Value       string               `json:"value"`
	CursorType  string               `json:"cursorType"`
}

type timelineItemContent struct {
	TweetResults struct {
		Result json.RawMessage `json:"result"`
	} `json:"tweet_results"`
}

// decodeTimeline walks the instruction list of a UserTweets response and
// assembles an ordered page plus the pair of pagination cursors.
//
// In a TimelineAddEntries instruction the last two entries are always the
// top and bottom cursors; everything before them is a tweet entry. Pinned
// entries are taken only when includePinned is set and land in instruction
// order, so a pin instruction ahead of the add-entries instruction places
// its entry before the chronological ones.
func decodeTimeline(body []byte, includePinned bool) (*TimelinePage, error) {
	var raw struct {
		Data struct {
			User struct {
				Result struct {
					TimelineV2 struct {
						Timeline timelineObj `json:"timeline"`
					} `json:"timeline_v2"`
				} `json:"result"`
			} `json:"user"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal UserTweets: %w", err)
	}
	if len(raw.Errors) > 0 {
		return nil, &APIError{Message: raw.Errors[0].Message}
	}

	page := &TimelinePage{}
	haveCursors := false

	for i, ins := range raw.Data.User.Result.TimelineV2.Timeline.Instructions {
		switch ins.Type {
		case "TimelineAddEntries":
			if len(ins.Entries) < 2 {
				return nil, &TimelineDecodeError{Reason: "add-entries instruction without cursor entries"}
			}
			split := len(ins.Entries) - 2
			for j, entry := range ins.Entries[:split] {
				tweet, err := parseEntryTweet(entry, fmt.Sprintf("instructions[%d].entries[%d]", i, j))
				if err != nil {
					return nil, err
				}
				page.Entries = append(page.Entries, TimelineEntry{Kind: EntryStatus, Tweet: tweet})
			}
			top, err := parseCursorValue(ins.Entries[split])
			if err != nil {
				return nil, err
			}
			bottom, err := parseCursorValue(ins.Entries[split+1])
			if err != nil {
				return nil, err
			}
			page.CursorTop, page.CursorBottom = top, bottom
			haveCursors = true

		case "TimelinePinEntry":
			if !includePinned {
				continue
			}
			if ins.Entry == nil {
				return nil, &TimelineDecodeError{Reason: "pin instruction without entry"}
			}
			tweet, err := parseEntryTweet(*ins.Entry, fmt.Sprintf("instructions[%d].entry", i))
			if err != nil {
				return nil, err
			}
			page.Entries = append(page.Entries, TimelineEntry{Kind: EntryPinned, Tweet: tweet})
		}
	}

	if !haveCursors {
		return nil, &TimelineDecodeError{Reason: "no TimelineAddEntries instruction"}
	}
	return page, nil
}

// parseEntryTweet descends content.itemContent.tweet_results.result of a
// timeline entry.
func parseEntryTweet(entry timelineEntryNode, path string) (Tweet, error) {
	if entry.Content.ItemContent == nil {
		return nil, &TweetDecodeError{Path: path + ".content.itemContent", Reason: "missing item content"}
	}
	return parseTweetResult(entry.Content.ItemContent.TweetResults.Result, path+".content.itemContent.tweet_results.result", 0)
}

// parseCursorValue reads the opaque token of a cursor entry.
func parseCursorValue(entry timelineEntryNode) (string, error) {
	if entry.Content.Value == "" {
		return "", &TimelineDecodeError{Reason: fmt.Sprintf("cursor entry %q without value", entry.EntryID)}
	}
	return entry.Content.Value, nil
}
