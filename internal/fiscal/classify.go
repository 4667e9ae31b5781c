package fiscal

import "time"

// Classification is the relationship between the period a payment settles and
// the month in which it was received.
type Classification string

const (
	Normal  Classification = "normal"
	Advance Classification = "advance"
	Late    Classification = "late"
)

// Classify compares the target fiscal period against the calendar month of the
// transaction date. A later fiscal period is an advance, an earlier one is late.
func Classify(period Period, transactionDate time.Time) Classification {
	switch period.Compare(PeriodOf(transactionDate)) {
	case 1:
		return Advance
	case -1:
		return Late
	default:
		return Normal
	}
}

// Flags returns the two persisted booleans. They are never both true.
func (c Classification) Flags() (isAdvance, isLate bool) {
	return c == Advance, c == Late
}
