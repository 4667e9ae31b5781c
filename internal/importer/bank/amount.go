package bank

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseAmount reads amounts as printed by Mexican banks: "1,234.56",
// "$1,234.56", "-588.74" and "(588.74)" for negatives.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "", "MXN", "").Replace(s)

	negative := strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")")
	if negative {
		clean = strings.Trim(clean, "()")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	if negative {
		d = d.Neg()
	}

	return d.Round(2), nil
}

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006", "02/01/06"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
