package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/spectxt"
)

func newInfoCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "info <file>...",
		Short: "Print header metadata and channel statistics",
		Long: `Decode each file and print its metadata, channel statistics and any
warnings raised while reading the channel table.

Example:
  spxdump info sample.txt
  spxdump info --format yaml --counts sample.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}
	c.Flags().StringP("format", "f", "text", "Output format (text, yaml)")
	c.Flags().Bool("counts", false, "Include the channel table")
	return c
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	withCounts, _ := cmd.Flags().GetBool("counts")
	maxChannels, _ := cmd.Flags().GetInt("max-channels")

	w, err := writerFor(format)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	files, err := spectxt.OpenAll(cmd.Context(), args,
		spectxt.WithLogger(logger),
		spectxt.WithMaxChannels(maxChannels),
	)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	reports := make([]report, 0, len(files))
	for _, f := range files {
		reports = append(reports, newReport(f, withCounts))
	}
	return w(cmd.OutOrStdout(), reports)
}
