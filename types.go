package twitter

// User represents a Twitter/X profile decoded from a user result node.
type User struct {
	ID          string
	Handle      string
	DisplayName string
	Description string
}

// TextRange is the half-open [Start, End) span of the tweet's display text
// inside full_text.
type TextRange struct {
	Start int
	End   int
}

// Tweet is one of PlainTweet, QuoteTweet, Retweet, or TombstoneTweet.
// Quoted and retweeted children are themselves any Tweet variant, so a single
// value can hold an arbitrarily nested quote/retweet chain.
type Tweet interface {
	isTweet()
}

// PlainTweet is an ordinary tweet with no quoted or retweeted child.
type PlainTweet struct {
	Author    User
	Text      string
	TextRange TextRange
}

// QuoteTweet is a tweet quoting another tweet.
type QuoteTweet struct {
	Author    User
	Text      string
	TextRange TextRange
	Quoted    Tweet
}

// Retweet is a repost. Author is the retweeting user; the original author
// travels with the Retweeted child.
type Retweet struct {
	Author    User
	Retweeted Tweet
}

// TombstoneTweet stands in for content that is deleted, suspended, or
// otherwise withheld from the requester. It carries no author or text.
type TombstoneTweet struct {
	// Notice is the platform's explanation, when one is given.
	Notice string
}

func (*PlainTweet) isTweet()     {}
func (*QuoteTweet) isTweet()     {}
func (*Retweet) isTweet()        {}
func (*TombstoneTweet) isTweet() {}

// EntryKind records why a timeline entry was surfaced, not a property of the
// tweet itself.
type EntryKind int

const (
	EntryStatus EntryKind = iota
	EntryPinned
)

func (k EntryKind) String() string {
	if k == EntryPinned {
		return "pinned"
	}
	return "status"
}

// TimelineEntry is one surfaced tweet plus the reason it appeared.
type TimelineEntry struct {
	Kind  EntryKind
	Tweet Tweet
}

// TimelinePage is one decoded page of a user timeline. Entries preserve
// response order. CursorBottom is the opaque token to pass as the next
// request's cursor; a page with no entries means the timeline is exhausted
// and callers must stop paginating.
type TimelinePage struct {
	Entries      []TimelineEntry
	CursorTop    string
	CursorBottom string
}
