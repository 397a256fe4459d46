package views

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/model"
)

func RenderProfile(profile *model.UserProfile) error {
	pterm.DefaultSection.Println("Profile")

	fullName := strings.TrimSpace(profile.Name + " " + profile.LastName1 + " " + profile.LastName2)

	tableData := pterm.TableData{
		{"Name", fullName},
		{"Document ID", profile.DocumentID},
		{"Email", profile.Email},
		{"Phone", profile.PhoneNumber},
		{"Role", profile.Role},
		{"Member since", profile.CreatedAt},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
