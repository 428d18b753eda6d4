package cli

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

type partitionResult struct {
	Matched   []string `json:"matched"`
	Unmatched []string `json:"unmatched"`
}

func newPartitionCommand(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Split lines by whether they match --match",
		Long: `Split lines by whether they match the regular expression --match and
write both groups as one JSON object, each group in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid --match: %w", err)
			}

			matched, unmatched, err := seqs.Partition(a.lines(cmd), re.MatchString)
			if err != nil {
				return err
			}

			res := partitionResult{Matched: matched, Unmatched: unmatched}
			if res.Matched == nil {
				res.Matched = []string{}
			}
			if res.Unmatched == nil {
				res.Unmatched = []string{}
			}
			a.log.Debug().Int("matched", len(matched)).Int("unmatched", len(unmatched)).Msg("partitioned")
			a.done(len(matched) + len(unmatched))
			return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
		},
	}

	cmd.Flags().StringVar(&pattern, "match", "", "regular expression lines are tested against")
	_ = cmd.MarkFlagRequired("match")
	return cmd
}
