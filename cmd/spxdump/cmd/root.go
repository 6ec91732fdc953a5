package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the spxdump command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "spxdump",
		Short: "Inspect Bruker Esprit text spectra",
		Long: `spxdump decodes EDS spectra exported as text by Bruker Esprit and
prints their header metadata and channel statistics.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	root.PersistentFlags().Int("max-channels", 0, "Reject files declaring more channels (0 = library default)")

	root.AddCommand(newInfoCommand())
	root.AddCommand(newSniffCommand())
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a text logger on stderr at the level given by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := parseLevel(name)
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(h), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q", s)
	}
}
