package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

func newIsEmptyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isempty",
		Short: `Write "true" if the input has no lines, "false" otherwise`,
		Long: `Write "true" if the input has no lines, "false" otherwise. At most one
line is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			empty, err := seqs.IsEmpty(a.lines(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), empty)
			return err
		},
	}
}
