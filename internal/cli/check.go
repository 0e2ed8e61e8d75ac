package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/itemcheck/internal/check"
	"github.com/roach88/itemcheck/internal/config"
	"github.com/roach88/itemcheck/internal/item"
	"github.com/roach88/itemcheck/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	IDs         string
	StrictOrder bool
}

// CheckReport is the outcome of one equivalence check.
type CheckReport struct {
	IDs       []int64               `json:"ids"`
	Order     string                `json:"order"`
	Bootstrap store.BootstrapResult `json:"bootstrap"`
	Fixed     []item.Item           `json:"fixed"`
	Batch     []item.Item           `json:"batch"`
	Match     bool                  `json:"match"`
	Mismatch  string                `json:"mismatch,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Bootstrap, then compare fixed and batch queries",
		Long: `Bootstrap the items table, then fetch the same ids twice:

  fixed  SELECT ... WHERE id IN (?, ?, ?, ?)  with four bound ids
  batch  a join against the server-side expansion of one JSON array

Both result sets must hold the same rows. By default both sides are sorted
by id before comparison; --strict-order compares them as returned.

Exit codes:
  0 - Result sets match
  1 - Result sets differ, or the table is corrupt
  2 - Command error (configuration, connection, wrong number of ids)

Examples:
  itemcheck check --database-url ./items.db
  itemcheck check --ids 1,2,3,4 --strict-order --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.IDs, "ids", config.FormatIDs(config.DefaultIDs), "comma-separated list of exactly 4 ids")
	cmd.Flags().BoolVar(&opts.StrictOrder, "strict-order", false, "compare rows in the order the engine returned them")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	sess, err := openSession(cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	ids := sess.cfg.IDs
	if cmd.Flags().Changed("ids") {
		ids, err = config.ParseIDs(opts.IDs)
		if err != nil {
			return fail(sess.out, ErrCodeConfig, ExitCommandError, "invalid --ids", err)
		}
	}
	if len(ids) != store.FixedArity {
		return fail(sess.out, ErrCodeArity, ExitCommandError, "invalid ids", store.ErrFixedArity)
	}

	order := check.OrderByID
	if opts.StrictOrder || sess.cfg.StrictOrder {
		order = check.OrderStrict
	}

	bootstrap, err := sess.bootstrap()
	if err != nil {
		return err
	}

	fixed, err := sess.store.ItemsByFixedIDs(sess.ctx, ids)
	if err != nil {
		return fail(sess.out, ErrCodeQuery, ExitCommandError, "fixed query failed", err)
	}
	sess.log.Info("fixed query", "rows", len(fixed))
	sess.log.Debug("fixed query rows", "rows", fixed)

	batched, err := sess.store.ItemsByBatchIDs(sess.ctx, ids)
	if err != nil {
		return fail(sess.out, ErrCodeQuery, ExitCommandError, "batch query failed", err)
	}
	sess.log.Info("batch query", "rows", len(batched))
	sess.log.Debug("batch query rows", "rows", batched)

	report := CheckReport{
		IDs:       ids,
		Order:     order.String(),
		Bootstrap: bootstrap,
		Fixed:     fixed,
		Batch:     batched,
		Match:     true,
	}

	cmpErr := check.Compare(fixed, batched, order)
	if cmpErr != nil {
		var mismatch *check.MismatchError
		if !errors.As(cmpErr, &mismatch) {
			return WrapExitError(ExitCommandError, "compare failed", cmpErr)
		}
		report.Match = false
		report.Mismatch = cmpErr.Error()
		sess.log.Error("result sets differ", "index", mismatch.Index, "order", order.String())
	}

	return outputCheck(sess.out, report, cmpErr)
}

func outputCheck(out *OutputFormatter, report CheckReport, cmpErr error) error {
	if out.JSON() {
		if report.Match {
			return out.Success(report)
		}
		if err := out.Failure(ErrCodeMismatch, "result sets differ", report.Mismatch, report); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, "result sets differ", cmpErr)
	}

	if err := renderCheck(out.Writer, report); err != nil {
		return err
	}
	if !report.Match {
		return WrapExitError(ExitFailure, "result sets differ", cmpErr)
	}
	return nil
}
