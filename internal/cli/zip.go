package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

func newZipCommand(a *app) *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Pair input lines with the lines of --with",
		Long: `Pair each input line with the line at the same position in the file
named by --with and write every pair as a JSON array. Output stops at the end
of the shorter input. --with - reads the paired lines from standard input, which
then requires --input to name a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if with == stdin && a.cfg.Input == stdin {
				return errors.New("--with and --input cannot both read standard input")
			}
			pairs, err := seqs.Zip(a.lines(cmd), readLines(open(cmd, with)))
			if err != nil {
				return err
			}

			write := jsonLines[[2]string](cmd.OutOrStdout())
			n, err := emit(limit(pairs, a.cfg.Limit), func(p seqs.Pair[string, string]) error {
				return write([2]string{p.First, p.Second})
			})
			a.done(n)
			return err
		},
	}

	cmd.Flags().StringVar(&with, "with", "", `file whose lines are paired with the input, "-" for standard input`)
	_ = cmd.MarkFlagRequired("with")
	return cmd
}
