package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/model"
)

type BeneficiaryListView struct{}

func NewBeneficiaryListView() *BeneficiaryListView {
	return &BeneficiaryListView{}
}

func (v *BeneficiaryListView) Render(beneficiaries []model.Beneficiary) error {
	if len(beneficiaries) == 0 {
		pterm.Warning.Println("No beneficiaries registered. Add one with 'bancli beneficiary add'")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Alias", "Account Number", "Bank"},
	}

	for _, b := range beneficiaries {
		bank := b.BankName
		if bank == "" {
			bank = "Other bank"
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", b.ID),
			b.Alias,
			b.AccountNumber,
			bank,
		})
	}

	pterm.DefaultSection.Printf("Beneficiaries")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d beneficiaries\n", len(beneficiaries))

	return nil
}
