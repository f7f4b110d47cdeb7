package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/pairwith/config"
	clierrors "github.com/randalmurphal/pairwith/errors"
	"github.com/randalmurphal/pairwith/git"
	"github.com/randalmurphal/pairwith/pairing"
)

// app is what every subcommand works with once configuration is resolved.
type app struct {
	cfg       *config.Resolved
	save      config.SaveConfig
	gitRoot   string
	logger    *slog.Logger
	extractor *pairing.Extractor
}

// handles extracts the handles named in msg, expanding aliases unless told not to.
// Git comment lines and the verbose diff are not searched.
func (a *app) handles(msg string, expand bool) []string {
	handles := a.extractor.Extract(git.StripComments(msg))
	if expand {
		handles = a.cfg.Aliases().Expand(handles)
	}
	a.logger.Debug("extracted handles", "handles", handles, "expanded", expand)
	return handles
}

func (a *app) coAuthors(handles []string) []git.CoAuthor {
	domain := a.cfg.Get(config.KeyNoreplyDomain)
	authors := make([]git.CoAuthor, 0, len(handles))
	for _, h := range handles {
		authors = append(authors, git.NoreplyCoAuthor(h, domain))
	}
	return authors
}

func newCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFormat  string
		a          = &app{}
	)

	cmd := &cobra.Command{
		Use:           "pairwith",
		Short:         "Credit the collaborators named in a commit message",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rc := config.DefaultResolverConfig()
			rc.ErrWriter = cmd.ErrOrStderr()

			resolver := config.NewResolver(rc)
			a.gitRoot = resolver.GitRoot()
			a.save = config.DefaultSaveConfig()
			if configPath != "" {
				resolver = config.NewResolverWithPaths(rc, configPath, resolver.LocalPath())
				a.save.GlobalPath = configPath
			}

			a.cfg = resolver.ResolveWithFlags(map[string]string{
				config.KeyLogLevel:  logLevel,
				config.KeyLogFormat: logFormat,
			})
			a.logger = newLogger(cmd.ErrOrStderr(),
				a.cfg.Get(config.KeyLogLevel),
				a.cfg.Get(config.KeyLogFormat),
				a.cfg.GetBool(config.KeyNoColor),
			)
			a.extractor = pairing.NewExtractor(a.cfg.Phrases()...)

			a.logger.Debug("configuration resolved",
				"global", resolver.GlobalPath(),
				"local", resolver.LocalPath(),
				"phrases", a.extractor.Phrases(),
			)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to the global config file")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(
		newExtractCmd(a),
		newTrailersCmd(a),
		newHookCmd(a),
		newAliasCmd(a),
	)

	return cmd
}

// readMessage reads the commit message from the named file, or from stdin
// when there is no argument or it is "-".
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return "", clierrors.NewNoMessageError()
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", errors.Wrap(err, "read commit message from stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", clierrors.WrapMessageFileError(err, args[0])
	}
	return string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func printLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
