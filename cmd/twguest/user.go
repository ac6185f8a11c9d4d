package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func userCmd() *cobra.Command {
	var proxy string

	cmd := &cobra.Command{
		Use:   "user <handle>",
		Short: "Look up a profile by handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd.Context(), proxy)
			if err != nil {
				return err
			}
			user, err := session.GetUserByScreenName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(map[string]string{
				"id":          user.ID,
				"handle":      user.Handle,
				"name":        user.DisplayName,
				"description": user.Description,
			})
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&proxy, "proxy", "", "Proxy URL for outbound requests")
	return cmd
}
