package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/spectxt"
)

func newSniffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff <file>...",
		Short: "Report whether files are Esprit text spectra",
		Long: `Check the two signature lines of each file without decoding it.

Example:
  spxdump sniff *.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				ok, err := sniffFile(path)
				if err != nil {
					return err
				}
				verdict := "no"
				if ok {
					verdict = "yes"
				}
				fmt.Fprintf(out, "%s: %s\n", path, verdict)
			}
			return nil
		},
	}
}

func sniffFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return spectxt.Sniff(f), nil
}
