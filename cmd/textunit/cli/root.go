// Package cli implements the textunit command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/textunit/internal/logutil"
)

// errIllFormed is returned by commands that found ill-formed input. The
// details have already been reported.
var errIllFormed = errors.New("ill-formed input")

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    Config
	logger *slog.Logger
}

// Main returns the root command.
func Main() *cobra.Command {
	a := &app{v: newViper(), logger: logutil.Discard()}

	rootCmd := &cobra.Command{
		Use:   "textunit",
		Short: "Decode UTF-8 and UTF-16 text and split it into grapheme clusters",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := logutil.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Color)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		Run:           func(cmd *cobra.Command, _ []string) { cmd.Help() },
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	registerFlags(rootCmd.PersistentFlags())
	rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "toml", "json")

	rootCmd.AddCommand(a.scalarsCmd())
	rootCmd.AddCommand(a.graphemesCmd())
	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(a.sanitizeCmd())

	return rootCmd
}

// Execute runs the root command with args and returns the process exit
// code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := Main()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errIllFormed) {
			fmt.Fprintf(stderr, "textunit: %v\n", err)
		}
		return 1
	}
	return 0
}

// document reads the single optional file argument.
func (a *app) document(cmd *cobra.Command, args []string) (*document, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	return readDocument(cmd.InOrStdin(), name, a.cfg.Encoding, a.logger)
}

// emit writes one record, either as a JSON line or through the text
// formatter.
func (a *app) emit(w io.Writer, record any, text func() string) error {
	if a.cfg.Format == formatJSON {
		return json.NewEncoder(w).Encode(record)
	}
	_, err := fmt.Fprintln(w, text())
	return err
}
