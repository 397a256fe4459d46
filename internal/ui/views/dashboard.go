package views

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/model"
)

type DashboardView struct{}

func NewDashboardView() *DashboardView {
	return &DashboardView{}
}

func (v *DashboardView) Render(d *model.AdminDashboard) error {
	pterm.DefaultSection.Println("Admin Dashboard")

	summary := pterm.TableData{
		{"Total users", fmt.Sprintf("%d", d.TotalUsers)},
		{"Retained users", fmt.Sprintf("%d", d.RetainedUsersCount)},
		{"Blocked users", pterm.Red(fmt.Sprintf("%d", d.TotalBlockedUsersCount))},
	}
	if err := pterm.DefaultTable.WithData(summary).Render(); err != nil {
		return err
	}

	if len(d.LastUsersBlocked) > 0 {
		pterm.DefaultSection.WithLevel(2).Println("Recently Blocked")

		blocked := pterm.TableData{{"Name", "Document ID", "Blocked At"}}
		for _, u := range d.LastUsersBlocked {
			blocked = append(blocked, []string{u.Name, u.DocumentID, u.BlockedAt})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(blocked).Render(); err != nil {
			return err
		}
	}

	if len(d.TransactionCurve) > 0 {
		pterm.DefaultSection.WithLevel(2).Println("Transaction Volume by Currency")

		currencies := make([]string, 0, len(d.TransactionCurve))
		for currency := range d.TransactionCurve {
			currencies = append(currencies, currency)
		}
		sort.Strings(currencies)

		for _, currency := range currencies {
			points := d.TransactionCurve[currency]

			bars := make([]pterm.Bar, 0, len(points))
			for _, p := range points {
				bars = append(bars, pterm.Bar{Label: p.Date, Value: int(p.Amount)})
			}

			pterm.Info.Println(currency)
			if err := pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithShowValue().Render(); err != nil {
				return err
			}
		}
	}

	return nil
}
