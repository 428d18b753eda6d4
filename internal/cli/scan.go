package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

func newScanCommand(a *app) *cobra.Command {
	var (
		seed      int
		fromFirst bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Write the running sum of integer lines",
		Long: `Write the running sum of the input, one integer per line.

The sum starts at --seed and the seed itself is not written. With --from-first
the first line is the seed, so the output is one line shorter than the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ints, err := parseInts(a.lines(cmd))
			if err != nil {
				return err
			}

			add := func(acc, v int) int { return acc + v }
			var sums seqs.Seq[int]
			if fromFirst {
				sums, err = seqs.ScanFirst(ints, add)
			} else {
				sums, err = seqs.Scan(ints, seed, add)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n, err := emit(limit(sums, a.cfg.Limit), func(v int) error {
				_, err := fmt.Fprintln(out, v)
				return err
			})
			a.done(n)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&seed, "seed", 0, "initial value of the sum")
	flags.BoolVar(&fromFirst, "from-first", false, "use the first line as the seed")
	return cmd
}

// parseInts lazily parses each line as an integer. A bad line ends the
// sequence with an error naming its line number.
func parseInts(src seqs.Seq[string]) (seqs.Seq[int], error) {
	indexed, err := seqs.WithIndex(src)
	if err != nil {
		return nil, err
	}
	return seqs.TryMap(indexed, func(l seqs.Indexed[string]) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(l.Element))
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", l.Index+1, err)
		}
		return v, nil
	})
}
