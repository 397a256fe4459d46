package views

import (
	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/txform"
)

// RenderOperationSummary previews the draft the way the web form's summary
// card does, before the user confirms.
func RenderOperationSummary(draft txform.Draft) {
	pterm.DefaultSection.Println("Operation Summary")

	sign := "-"
	if draft.Kind == txform.KindDeposit {
		sign = "+"
	}

	from := draft.SourceAccount
	if draft.Kind == txform.KindDeposit {
		from = "External / Teller"
	}

	to := draft.TargetAccount
	if draft.Kind == txform.KindPayment {
		to = draft.ServiceName + " (" + draft.SupplyCode + ")"
	}

	tableData := pterm.TableData{
		{"Type", string(draft.Kind)},
		{"From", orDash(from)},
		{"To", orDash(to)},
		{"Amount", sign + " " + draft.Amount + " " + draft.Currency},
		{"Description", orDash(draft.Description)},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}
