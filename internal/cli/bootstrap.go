package cli

import (
	"github.com/spf13/cobra"
)

// NewBootstrapCommand creates the bootstrap command.
func NewBootstrapCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create and seed the items table",
		Long: `Create the items table if it does not exist and seed it with 100 rows.

Seeding happens only when the table is empty. A table that already holds
100 rows is left untouched. Any other row count means the table is corrupt:
nothing is changed and the command fails; drop the table manually.

Exit codes:
  0 - Table is ready
  1 - Table is corrupt
  2 - Command error (configuration, connection)

Examples:
  itemcheck bootstrap --database-url ./items.db
  DATABASE_URL=postgres://localhost/test itemcheck bootstrap --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(rootOpts, cmd)
		},
	}

	return cmd
}

func runBootstrap(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	result, err := sess.bootstrap()
	if err != nil {
		return err
	}

	if sess.out.JSON() {
		return sess.out.Success(result)
	}
	return sess.out.Success(describeBootstrap(result))
}
