package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		period string
		date   time.Time
		want   fiscal.Classification
	}{
		{name: "SameMonth", period: "2025-06", date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), want: fiscal.Normal},
		{name: "PrepayingNextMonth", period: "2025-07", date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), want: fiscal.Advance},
		{name: "SettlingPastMonth", period: "2025-05", date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: fiscal.Late},
		{name: "AdvanceAcrossYear", period: "2026-01", date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), want: fiscal.Advance},
		{name: "LateAcrossYear", period: "2025-12", date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), want: fiscal.Late},
		{name: "FarFuture", period: "2027-03", date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), want: fiscal.Advance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscal.Classify(fiscal.MustParsePeriod(tt.period), tt.date))
		})
	}
}

func TestClassify_FlagsAreExclusive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for m := 0; m < 36; m++ {
		period := fiscal.PeriodOf(start.AddDate(0, m, 0))

		for d := 0; d < 36*31; d += 9 {
			c := fiscal.Classify(period, start.AddDate(0, 0, d))

			adv, late := c.Flags()
			assert.False(t, adv && late, "period %s day %d", period, d)
			assert.Contains(t, []fiscal.Classification{fiscal.Normal, fiscal.Advance, fiscal.Late}, c)
			assert.Equal(t, c == fiscal.Normal, !adv && !late)
		}
	}
}
