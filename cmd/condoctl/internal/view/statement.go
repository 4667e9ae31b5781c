package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/condo/internal/statement"
)

// Statement renders a financial status report.
func Statement(tenantName string, st *statement.Statement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", title(fmt.Sprintf("%s · Estado financiero %s", tenantName, st.PeriodLabel)))

	income := newTable(map[int]bool{1: true, 2: true}, "Ingresos", "Movimientos", "Importe")
	income.Row("Cuotas del periodo", strconv.Itoa(st.Income.Normal.Count), FormatAmount(st.Income.Normal.Sum))
	income.Row("Pagos atrasados", strconv.Itoa(st.Income.Late.Count), FormatAmount(st.Income.Late.Sum))
	income.Row("Adelantos recibidos", strconv.Itoa(st.Income.AdvancesReceived.Count), FormatAmount(st.Income.AdvancesReceived.Sum))
	income.Row("Adelantos aplicados", strconv.Itoa(st.Income.AdvancesApplied.Count), FormatAmount(st.Income.AdvancesApplied.Sum))
	b.WriteString(income.Render())
	b.WriteString("\n\n")

	t := st.Totals
	totals := newTable(map[int]bool{1: true}, "Concepto", "Importe")
	totals.Row("Saldo inicial", FormatAmount(t.OpeningRemainder))
	totals.Row("Ingreso en efectivo", FormatAmount(t.TotalIncomeCash))
	totals.Row("Gastos del periodo", FormatAmount(t.PeriodExpense))
	totals.Row("Flujo neto", FormatAmount(t.NetPeriodFlow))
	totals.Row("Saldo final", FormatAmount(t.FinalBalance))
	totals.Row("Reserva de adelantos", FormatAmount(t.AdvanceReserve))
	totals.Row("Saldo disponible", FormatAmount(t.AvailableBalance))
	b.WriteString(totals.Render())

	if len(st.ReserveSummary) > 0 {
		reserve := newTable(map[int]bool{1: true, 2: true}, "Periodo", "Unidades", "Reserva")
		for _, l := range st.ReserveSummary {
			reserve.Row(l.Period.Label(), strconv.Itoa(l.Units), FormatAmount(l.Amount))
		}

		b.WriteString("\n\n")
		b.WriteString(reserve.Render())
	}

	if len(st.ExpenseByCategory) > 0 {
		expenses := newTable(map[int]bool{1: true, 2: true}, "Categoría", "Movimientos", "Gasto")
		for _, e := range st.ExpenseByCategory {
			expenses.Row(e.Name, strconv.Itoa(e.Count), FormatAmount(e.Amount))
		}

		b.WriteString("\n\n")
		b.WriteString(expenses.Render())
	}

	return b.String()
}
