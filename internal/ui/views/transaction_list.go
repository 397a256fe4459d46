package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/model"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(title string, page *gateway.Page[model.TransactionRecord]) error {
	if len(page.Content) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "From", "To", "Amount", "Status", "Reference"},
	}

	for _, tx := range page.Content {
		amount := fmt.Sprintf("%.2f %s", tx.Amount, tx.Currency)

		var coloredType, coloredAmount string
		switch tx.TransactionType {
		case "DEPOSIT":
			coloredType = pterm.Green(tx.TransactionType)
			coloredAmount = pterm.Green("+" + amount)
		case "WITHDRAW", "PAYMENT":
			coloredType = pterm.Red(tx.TransactionType)
			coloredAmount = pterm.Red("-" + amount)
		case "TRANSFER":
			coloredType = pterm.Blue(tx.TransactionType)
			coloredAmount = pterm.Blue(amount)
		default:
			coloredType = tx.TransactionType
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.CreatedAt,
			coloredType,
			orDash(tx.SourceAccount),
			orDash(tx.TargetAccount),
			coloredAmount,
			statusBadge(tx.TransactionStatus),
			tx.ReferenceCode,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Page %d of %d (%d transactions in total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)

	return nil
}

func statusBadge(status model.TransactionStatus) string {
	switch status {
	case model.StatusSuccess:
		return pterm.Green(string(status))
	case model.StatusFailed:
		return pterm.Red(string(status))
	case model.StatusPending:
		return pterm.Yellow(string(status))
	default:
		return string(status)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
