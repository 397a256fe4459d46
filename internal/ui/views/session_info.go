package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/model"
)

func RenderSessionInfo(identity *model.Identity) error {
	if identity == nil {
		pterm.Warning.Println("Not logged in")
		return nil
	}

	tableData := pterm.TableData{
		{"User ID", fmt.Sprintf("%d", identity.ID)},
		{"Name", orDash(identity.Name)},
		{"Role", string(identity.Role)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
