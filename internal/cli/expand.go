package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/itemcheck/internal/config"
	"github.com/roach88/itemcheck/internal/item"
)

// ExpandOptions holds flags for the expand command.
type ExpandOptions struct {
	*RootOptions
	IDs  string
	Seed bool
}

// ExpandResult compares what was sent with what the engine expanded.
type ExpandResult struct {
	Kind     string `json:"kind"` // "ids" or "drafts"
	Sent     any    `json:"sent"`
	Returned any    `json:"returned"`
	Match    bool   `json:"match"`
}

// NewExpandCommand creates the expand command.
func NewExpandCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpandOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Round-trip a JSON batch through the database engine",
		Long: `Encode a batch as JSON, bind it as a single parameter and select it back
through the engine's JSON expansion, then compare with the input.

--ids round-trips an identifier list. --seed round-trips the 100 seed
records, including their null prices. No table is touched.

Exit codes:
  0 - Batch survived the round trip unchanged
  1 - The engine returned different values
  2 - Command error

Examples:
  itemcheck expand --ids 10,20,381,35
  itemcheck expand --seed --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.IDs, "ids", "", "comma-separated list of ids to round-trip")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "round-trip the seed records")
	cmd.MarkFlagsMutuallyExclusive("ids", "seed")
	cmd.MarkFlagsOneRequired("ids", "seed")

	return cmd
}

func runExpand(opts *ExpandOptions, cmd *cobra.Command) error {
	sess, err := openSession(cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	var result ExpandResult
	if opts.Seed {
		sent := item.SeedDrafts()
		returned, err := sess.store.ExpandDrafts(sess.ctx, sent)
		if err != nil {
			return fail(sess.out, ErrCodeQuery, ExitCommandError, "expand failed", err)
		}
		result = ExpandResult{
			Kind:     "drafts",
			Sent:     sent,
			Returned: returned,
			Match:    slices.EqualFunc(sent, returned, item.Draft.Equal),
		}
	} else {
		sent, err := config.ParseIDs(opts.IDs)
		if err != nil {
			return fail(sess.out, ErrCodeConfig, ExitCommandError, "invalid --ids", err)
		}
		returned, err := sess.store.ExpandIDs(sess.ctx, sent)
		if err != nil {
			return fail(sess.out, ErrCodeQuery, ExitCommandError, "expand failed", err)
		}
		result = ExpandResult{
			Kind:     "ids",
			Sent:     sent,
			Returned: returned,
			Match:    slices.Equal(sent, returned),
		}
	}
	sess.log.Info("expand", "kind", result.Kind, "match", result.Match)

	if sess.out.JSON() {
		if result.Match {
			return sess.out.Success(result)
		}
		if err := sess.out.Failure(ErrCodeMismatch, "round trip changed the batch", nil, result); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "round trip changed the batch")
	}

	if err := renderExpand(sess.out.Writer, result); err != nil {
		return err
	}
	if !result.Match {
		return NewExitError(ExitFailure, "round trip changed the batch")
	}
	return nil
}
