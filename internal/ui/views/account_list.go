package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts yet. Create one with 'bancli account create'")
		return nil
	}

	tableData := pterm.TableData{
		{"Account Number", "Type", "Currency", "Balance"},
	}

	for _, acc := range accounts {
		balance := fmt.Sprintf("%.2f %s", acc.CurrentBalance, acc.Currency)
		coloredBalance := pterm.Green(balance)
		if acc.CurrentBalance < 0 {
			coloredBalance = pterm.Red(balance)
		}

		tableData = append(tableData, []string{
			acc.AccountNumber,
			acc.AccountType,
			acc.Currency,
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("My Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
