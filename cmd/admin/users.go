package admin

import (
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/spf13/cobra"
)

type usersFlags struct {
	Active  string
	Blocked string
	Page    int
	Size    int
}

func NewUsersCmd(a *app.App, cfg *config.Config) *cobra.Command {
	flags := &usersFlags{}

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List bank users",
		Long: `List bank users with optional activity/blocked filters.

Examples:
  bancli admin users
  bancli admin users --blocked true --page 0 --size 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size := flags.Size
			if size <= 0 {
				size = cfg.Defaults.PageSize
			}

			filters := gateway.AdminUserFilters{
				Active:  parseTriState(flags.Active),
				Blocked: parseTriState(flags.Blocked),
				Page:    flags.Page,
				Size:    size,
			}

			page, err := a.Gateway.AdminUsers(cmd.Context(), filters)
			if err != nil {
				return err
			}

			return views.NewUserListView().Render(page)
		},
	}

	cmd.Flags().StringVar(&flags.Active, "active", "", "Filter by activity: true or false")
	cmd.Flags().StringVar(&flags.Blocked, "blocked", "", "Filter by blocked state: true or false")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 0, "Page number (zero-based)")
	cmd.Flags().IntVar(&flags.Size, "size", 0, "Page size")

	return cmd
}

// parseTriState maps "", "true", "false" onto nil/true/false.
func parseTriState(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
