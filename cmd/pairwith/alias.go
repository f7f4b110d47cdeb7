package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/pairwith/config"
	clierrors "github.com/randalmurphal/pairwith/errors"
)

func newAliasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage aliases that stand for one or more handles",
	}

	cmd.AddCommand(
		newAliasSetCmd(a),
		newAliasListCmd(a),
		newAliasShowCmd(a),
		newAliasDeleteCmd(a),
	)

	return cmd
}

// scope picks the config file an alias change goes to.
func (a *app) scope(local bool) (config.Scope, error) {
	if !local {
		return config.ScopeGlobal, nil
	}
	if a.gitRoot == "" {
		return "", clierrors.NewNotInGitRepoError()
	}
	return config.ScopeLocal, nil
}

func (a *app) configPath(scope config.Scope) string {
	path, _, err := a.save.Path(scope, a.gitRoot)
	if err != nil {
		return string(scope) + " config"
	}
	return path
}

// definedIn reports which other config file holds an alias missing from scope.
func (a *app) definedIn(scope config.Scope, name string) config.Source {
	other, source := config.ScopeLocal, config.SourceLocal
	if scope == config.ScopeLocal {
		other, source = config.ScopeGlobal, config.SourceGlobal
	}

	aliases, err := a.save.Aliases(other, a.gitRoot)
	if err != nil {
		return config.SourceDefault
	}
	if _, ok := aliases[name]; ok {
		return source
	}
	return config.SourceDefault
}

func newAliasSetCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set <name> <handle>...",
		Short: "Define an alias",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := a.scope(local)
			if err != nil {
				return err
			}

			name := args[0]
			if err := a.save.SetAlias(scope, a.gitRoot, name, args[1:]); err != nil {
				if clierrors.IsAliasError(err) {
					return clierrors.WrapAliasError(err, name)
				}
				return clierrors.WrapConfigWriteError(err, a.configPath(scope))
			}

			a.logger.Info("alias saved", "alias", name, "handles", args[1:], "scope", scope)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "save to .pairwith.yaml in the repository instead of the user config")

	return cmd
}

func newAliasListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := a.cfg.Aliases()
			for _, name := range aliases.Names() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(aliases[name], " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newAliasShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the handles an alias stands for, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handles, ok := a.cfg.Aliases()[args[0]]
			if !ok {
				return clierrors.WrapAliasError(
					fmt.Errorf("alias %s: %w", args[0], config.ErrAliasNotFound), args[0])
			}
			return printLines(cmd.OutOrStdout(), handles)
		},
	}
}

func newAliasDeleteCmd(a *app) *cobra.Command {
	var (
		local bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := a.scope(local)
			if err != nil {
				return err
			}

			name := args[0]
			saved, err := a.save.Aliases(scope, a.gitRoot)
			if err != nil {
				return clierrors.WrapConfigWriteError(err, a.configPath(scope))
			}
			if _, ok := saved[name]; !ok {
				if _, defined := a.cfg.Aliases()[name]; defined {
					return clierrors.NewAliasElsewhereError(name, a.configPath(scope), a.definedIn(scope, name))
				}
				// already gone
				a.logger.Debug("alias not defined", "alias", name)
				return nil
			}

			if !yes {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "delete alias %s? [y/n] ", name); err != nil {
					return err
				}
				response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && response == "" {
					return errors.Wrap(err, "read confirmation")
				}
				response = strings.ToLower(strings.TrimSpace(response))
				if response != "y" && response != "yes" {
					return nil
				}
			}

			if err := a.save.DeleteAlias(scope, a.gitRoot, name); err != nil {
				if clierrors.IsAliasError(err) {
					return clierrors.WrapAliasError(err, name)
				}
				return clierrors.WrapConfigWriteError(err, a.configPath(scope))
			}

			a.logger.Info("alias deleted", "alias", name, "scope", scope)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "delete from .pairwith.yaml in the repository")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
