package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	twitter "github.com/corvid-sh/go-twitter-guest"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "twguest",
		Short:   "Read Twitter/X profiles and timelines with scraped guest credentials",
		Version: version,
	}

	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(tweetsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession wires a transport and runs the credential bootstrap.
func openSession(ctx context.Context, proxy string) (*twitter.Session, error) {
	transport, err := twitter.NewStealthTransport(proxy)
	if err != nil {
		return nil, err
	}
	session, err := twitter.NewSession(twitter.WithTransport(transport))
	if err != nil {
		return nil, err
	}
	log.Debug("bootstrapping guest session")
	if err := session.Open(ctx); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return session, nil
}
