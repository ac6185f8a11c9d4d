package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	twitter "github.com/corvid-sh/go-twitter-guest"
)

func tweetsCmd() *cobra.Command {
	var proxy, out string
	var count int

	cmd := &cobra.Command{
		Use:   "tweets <handle>",
		Short: "Dump a user's timeline as a YAML document stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := openSession(ctx, proxy)
			if err != nil {
				return err
			}

			user, err := session.GetUserByScreenName(ctx, args[0])
			if err != nil {
				return err
			}
			log.Info("resolved user", "handle", user.Handle, "id", user.ID)

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			enc := yaml.NewEncoder(w)
			defer enc.Close()

			cursor := ""
			pages := 0
			for {
				// Pinned entries only make sense on the head page;
				// later pages would repeat them.
				page, err := session.GetUserTweets(ctx, user.ID, count, cursor, cursor == "")
				if err != nil {
					return err
				}
				if len(page.Entries) == 0 {
					break
				}
				pages++
				log.Debug("fetched page", "page", pages, "entries", len(page.Entries))

				for _, entry := range page.Entries {
					doc := tweetDoc(entry.Tweet)
					doc["kind"] = entry.Kind.String()
					if err := enc.Encode(doc); err != nil {
						return err
					}
				}
				cursor = page.CursorBottom
			}

			log.Info("timeline exhausted", "pages", pages)
			return nil
		},
	}

	cmd.Flags().StringVar(&proxy, "proxy", "", "Proxy URL for outbound requests")
	cmd.Flags().StringVar(&out, "out", "", "Write the YAML stream to a file instead of stdout")
	cmd.Flags().IntVar(&count, "count", 100, "Page size to request")
	return cmd
}

// tweetDoc flattens a tweet tree into nested YAML-friendly maps.
func tweetDoc(t twitter.Tweet) map[string]any {
	switch t := t.(type) {
	case *twitter.TombstoneTweet:
		doc := map[string]any{"type": "tombstone"}
		if t.Notice != "" {
			doc["notice"] = t.Notice
		}
		return doc
	case *twitter.Retweet:
		return map[string]any{
			"type":      "retweet",
			"by":        t.Author.Handle,
			"retweeted": tweetDoc(t.Retweeted),
		}
	case *twitter.QuoteTweet:
		return map[string]any{
			"type":   "quote",
			"author": t.Author.Handle,
			"text":   t.Text,
			"quoted": tweetDoc(t.Quoted),
		}
	case *twitter.PlainTweet:
		return map[string]any{
			"type":   "tweet",
			"author": t.Author.Handle,
			"text":   t.Text,
		}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", t)}
	}
}
