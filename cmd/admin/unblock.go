package admin

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/spf13/cobra"
)

func NewUnblockCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <user-id>",
		Short: "Unblock a blocked user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id '%s'", args[0])
			}

			if err := a.Gateway.UnblockUser(cmd.Context(), userID); err != nil {
				return err
			}

			pterm.Success.Printf("User %d unblocked\n", userID)
			return nil
		},
	}
}
