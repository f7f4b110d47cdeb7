package main

import (
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/pairwith/errors"
	"github.com/randalmurphal/pairwith/git"
)

func newHookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hook <message-file>",
		Short: "Add Co-authored-by trailers to a commit message file (commit-msg hook)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			info, err := os.Stat(path)
			if err != nil {
				return clierrors.WrapMessageFileError(err, path)
			}
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			handles := a.handles(msg, true)
			if len(handles) == 0 {
				a.logger.Debug("no collaborators named", "file", path)
				return nil
			}

			updated := git.AddCoAuthors(msg, a.coAuthors(handles))
			if updated == msg {
				a.logger.Debug("collaborators already credited", "handles", handles)
				return nil
			}

			if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
				return clierrors.WrapMessageFileError(err, path)
			}

			a.logger.Info("added co-authors", "handles", handles)
			return nil
		},
	}
}
