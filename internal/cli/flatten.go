package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

func newFlattenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten",
		Short: "Treat each input line as a file path and write the lines of every file",
		Long: `Treat each input line as a file path and write the lines of all those
files in order. Blank input lines are skipped. Each file is opened only when
the output reaches it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := seqs.TryMap(a.lines(cmd), func(path string) (seqs.Seq[string], error) {
				path = strings.TrimSpace(path)
				if path == "" {
					return seqs.FromSlice[string](nil), nil
				}
				return readLines(openFile(path)), nil
			})
			if err != nil {
				return err
			}

			flat, err := seqs.Flatten(files)
			if err != nil {
				return err
			}

			n, err := emit(limit(flat, a.cfg.Limit), plainLines(cmd.OutOrStdout()))
			a.done(n)
			return err
		},
	}
}
