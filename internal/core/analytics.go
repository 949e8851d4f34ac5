package core

import (
	"time"
)

type (
	// MonthFlow is the income/expense pair for one calendar month.
	MonthFlow struct {
		Income   Money `json:"income"`
		Expenses Money `json:"expenses"`
	}

	// DayFlow is one bucket of the trailing daily series.
	DayFlow struct {
		Day      string `json:"day"` // YYYY-MM-DD
		Income   Money  `json:"income"`
		Expenses Money  `json:"expenses"`
		Net      Money  `json:"net"`
	}

	// Analytics is an immutable snapshot of the aggregates for one year.
	Analytics struct {
		Year             int                  `json:"year"`
		TotalIncome      Money                `json:"totalIncome"`
		TotalExpenses    Money                `json:"totalExpenses"`
		NetProfit        Money                `json:"netProfit"`
		ServiceBreakdown map[string]Money     `json:"serviceBreakdown"`
		MonthlyData      map[string]MonthFlow `json:"monthlyData"`
		EntryCount       int                  `json:"entryCount"`
	}
)

// OtherIncomeKey is the service-breakdown bucket for income entries that
// carry no named service (misc income, or haircuts with a blank service).
const OtherIncomeKey = "Other Income"

// MonthOrder is the canonical month-name ordering. MonthlyData is a map with
// no ordering guarantee, so chart adapters sort against this list.
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ComputeAnalytics folds the entry collection into year-scoped totals, a
// per-service income breakdown and per-month buckets. Only entries dated in
// asOf's calendar year contribute. It never fails: unparseable amounts count
// as zero and unparseable dates bucket to asOf's own date.
func ComputeAnalytics(entries []Entry, asOf time.Time) Analytics {
	res := Analytics{
		Year:             asOf.Year(),
		ServiceBreakdown: map[string]Money{},
		MonthlyData:      map[string]MonthFlow{},
		EntryCount:       len(entries),
	}

	for _, e := range entries {
		day := entryDay(e, asOf)
		if day.Year() != asOf.Year() {
			continue
		}
		amount := LenientCents(e.Amount)
		month := day.Month().String()
		flow := res.MonthlyData[month]

		switch e.Type {
		case TypeExpense:
			res.TotalExpenses.Cents += amount
			flow.Expenses.Cents += amount
		default:
			// haircut and misc both contribute income
			res.TotalIncome.Cents += amount
			flow.Income.Cents += amount
			key := e.Service
			if key == "" {
				key = OtherIncomeKey
			}
			res.ServiceBreakdown[key] = Money{Cents: res.ServiceBreakdown[key].Cents + amount}
		}
		res.MonthlyData[month] = flow
	}

	res.NetProfit = res.TotalIncome.Sub(res.TotalExpenses)
	return res
}

// DailySeries produces one bucket per day for the trailing window ending at
// asOf, oldest first. Entries match a bucket by exact date-string equality;
// there is no timezone normalization beyond the stored YYYY-MM-DD form.
// Window sizes of 7 and 30 are the ones the dashboard uses, but any positive
// window works.
func DailySeries(entries []Entry, asOf time.Time, windowDays int) []DayFlow {
	if windowDays <= 0 {
		return nil
	}

	byDay := make(map[string]*DayFlow, windowDays)
	series := make([]DayFlow, windowDays)
	for i := 0; i < windowDays; i++ {
		day := asOf.AddDate(0, 0, i-windowDays+1).Format(DateLayout)
		series[i] = DayFlow{Day: day}
		byDay[day] = &series[i]
	}

	for _, e := range entries {
		flow, ok := byDay[e.Date]
		if !ok {
			continue
		}
		amount := LenientCents(e.Amount)
		if e.Type == TypeExpense {
			flow.Expenses.Cents += amount
		} else {
			flow.Income.Cents += amount
		}
	}

	for i := range series {
		series[i].Net = series[i].Income.Sub(series[i].Expenses)
	}
	return series
}

// entryDay resolves the entry's calendar day for bucketing. A date that does
// not parse falls back to the current processing date; this is a soft-failure
// policy, not an error.
func entryDay(e Entry, asOf time.Time) time.Time {
	day, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return asOf
	}
	return day
}
