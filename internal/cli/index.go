package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

func newIndexCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: `Prefix each line with its zero-based position and a tab`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			indexed, err := seqs.WithIndex(a.lines(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n, err := emit(limit(indexed, a.cfg.Limit), func(l seqs.Indexed[string]) error {
				_, err := fmt.Fprintf(out, "%d\t%s\n", l.Index, l.Element)
				return err
			})
			a.done(n)
			return err
		},
	}
}
