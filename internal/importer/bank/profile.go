package bank

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Importe" with value "-1,500.00").
	amountSingle amountMode = iota
	// amountSplit means separate withdrawal and deposit columns (e.g. "Cargo"/"Abono").
	amountSplit
)

// Profile describes the column layout of a bank statement export.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	RefCol     string // optional
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles are tried in order; split layouts come first because their date
// and description headers overlap with the generic one.
var profiles = []Profile{
	{
		Name:       "bbva",
		DateCol:    "FECHA",
		DescCol:    "CONCEPTO",
		RefCol:     "REFERENCIA",
		AmountMode: amountSplit,
		DebitCol:   "CARGO",
		CreditCol:  "ABONO",
	},
	{
		Name:       "banorte",
		DateCol:    "FECHA",
		DescCol:    "DESCRIPCIÓN",
		RefCol:     "REFERENCIA",
		AmountMode: amountSplit,
		DebitCol:   "RETIROS",
		CreditCol:  "DEPÓSITOS",
	},
	{
		Name:       "generic",
		DateCol:    "FECHA",
		DescCol:    "DESCRIPCIÓN",
		RefCol:     "REFERENCIA",
		AmountMode: amountSingle,
		AmountCol:  "IMPORTE",
	},
}
