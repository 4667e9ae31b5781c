package view

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

func Debtors(rep *unit.DebtorsReport) string {
	if len(rep.Units) == 0 {
		return mutedStyle.Render("No units owe money.")
	}

	t := newTable(map[int]bool{2: true, 3: true}, "Unidad", "Propietario", "Cuota", "Saldo")
	for _, u := range rep.Units {
		t.Row(u.Number, u.OwnerName, FormatAmount(u.MonthlyFee), debtStyle.Render(FormatAmount(u.Balance)))
	}

	return fmt.Sprintf("%s\n\n%s\n\nTotal adeudado: %s", title("Deudores"), t.Render(), FormatAmount(rep.TotalDebt))
}

// Drift renders a balance audit; an empty list means every stored balance
// matches its confirmed history.
func Drift(drift []unit.Drift) string {
	if len(drift) == 0 {
		return "All unit balances match their confirmed transactions."
	}

	t := newTable(map[int]bool{1: true, 2: true, 3: true}, "Unidad", "Saldo guardado", "Saldo calculado", "Diferencia")
	for _, d := range drift {
		t.Row(d.Number, FormatAmount(d.Stored), FormatAmount(d.Computed), FormatAmount(d.Difference()))
	}

	return fmt.Sprintf("%s\n\n%s", title("Balance audit"), t.Render())
}

func Charges(rep *automation.Report) string {
	t := newTable(map[int]bool{2: true, 3: true, 5: true}, "Tenant", "Periodo", "Creados", "Existentes", "Sin cuota", "Total")
	for _, r := range rep.Results {
		t.Row(
			r.TenantID.String(),
			r.Period.String(),
			fmt.Sprint(r.Created),
			fmt.Sprint(r.AlreadyExisted),
			strings.Join(r.Skipped, ", "),
			FormatAmount(r.Total),
		)
	}

	var b strings.Builder

	b.WriteString(title("Cuotas mensuales"))
	b.WriteString("\n\n")
	b.WriteString(t.Render())
	fmt.Fprintf(&b, "\n\n%d charges created, %d already issued", rep.Created, rep.AlreadyExisted)

	return b.String()
}
