package transaction

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(a *app.App, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Create transactions and browse your history",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Guard.Require(guard.ViewTransactions)
		},
	}

	cmd.AddCommand(NewNewCmd(a, cfg))
	cmd.AddCommand(NewListCmd(a, cfg))

	return cmd
}
