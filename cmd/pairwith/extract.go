package main

import (
	"github.com/spf13/cobra"
)

func newExtractCmd(a *app) *cobra.Command {
	var noExpand bool

	cmd := &cobra.Command{
		Use:   "extract [message-file|-]",
		Short: "Print the handles named in a commit message, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), a.handles(msg, !noExpand))
		},
	}

	cmd.Flags().BoolVar(&noExpand, "no-expand", false, "print aliases as written instead of expanding them")

	return cmd
}

func newTrailersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trailers [message-file|-]",
		Short: "Print a Co-authored-by trailer for each handle in a commit message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			var trailers []string
			for _, author := range a.coAuthors(a.handles(msg, true)) {
				trailers = append(trailers, author.Trailer())
			}
			return printLines(cmd.OutOrStdout(), trailers)
		},
	}
}
