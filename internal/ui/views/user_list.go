package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/model"
)

type UserListView struct{}

func NewUserListView() *UserListView {
	return &UserListView{}
}

func (v *UserListView) Render(page *gateway.Page[model.AdminUser]) error {
	if len(page.Content) == 0 {
		pterm.Warning.Println("No users found")
		return nil
	}

	pterm.DefaultSection.Println("Users")

	tableData := pterm.TableData{
		{"ID", "Name", "Document", "Email", "Phone", "Role", "Status"},
	}

	for _, u := range page.Content {
		status := pterm.Green("ACTIVE")
		if u.IsBlocked {
			status = pterm.Red("BLOCKED")
		} else if !u.IsActive {
			status = pterm.Gray("INACTIVE")
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", u.ID),
			u.Name + " " + u.LastName1,
			u.DocumentID,
			u.Email,
			u.PhoneNumber,
			u.Role,
			status,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Page %d of %d (%d users in total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)

	return nil
}
