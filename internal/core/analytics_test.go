package core

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAnalyticsScenario(t *testing.T) {
	entries := []Entry{
		{ID: 1, Type: TypeHaircut, Service: "Dry cut", Amount: "20", Date: "2024-03-01"},
		{ID: 2, Type: TypeExpense, Description: "Shampoo", Amount: "5", Date: "2024-03-02"},
	}

	res := ComputeAnalytics(entries, date(2024, 6, 15))

	if res.TotalIncome.Cents != 2000 {
		t.Fatalf("totalIncome = %d, want 2000", res.TotalIncome.Cents)
	}
	if res.TotalExpenses.Cents != 500 {
		t.Fatalf("totalExpenses = %d, want 500", res.TotalExpenses.Cents)
	}
	if res.NetProfit.Cents != 1500 {
		t.Fatalf("netProfit = %d, want 1500", res.NetProfit.Cents)
	}
	if got := res.ServiceBreakdown["Dry cut"].Cents; got != 2000 {
		t.Fatalf("serviceBreakdown[Dry cut] = %d, want 2000", got)
	}
	march := res.MonthlyData["March"]
	if march.Income.Cents != 2000 || march.Expenses.Cents != 500 {
		t.Fatalf("March = %+v, want income 2000 expenses 500", march)
	}
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	res := ComputeAnalytics(nil, date(2025, 1, 1))

	if res.TotalIncome.Cents != 0 || res.TotalExpenses.Cents != 0 || res.NetProfit.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", res)
	}
	if len(res.ServiceBreakdown) != 0 || len(res.MonthlyData) != 0 {
		t.Fatalf("expected empty maps, got %+v", res)
	}
	if res.EntryCount != 0 {
		t.Fatalf("entryCount = %d, want 0", res.EntryCount)
	}
}

func TestComputeAnalyticsYearScoping(t *testing.T) {
	base := []Entry{
		{ID: 1, Type: TypeMisc, Description: "Tips", Amount: "12.50", Date: "2024-05-10"},
		{ID: 2, Type: TypeExpense, Description: "Scissors", Amount: "30", Date: "2024-07-01"},
	}
	withOtherYears := append([]Entry{
		{ID: 3, Type: TypeHaircut, Service: "Balayage", Amount: "135", Date: "2023-12-31"},
		{ID: 4, Type: TypeExpense, Description: "Rent", Amount: "500", Date: "2025-01-01"},
	}, base...)

	asOf := date(2024, 8, 1)
	got := ComputeAnalytics(withOtherYears, asOf)
	want := ComputeAnalytics(base, asOf)

	if got.TotalIncome != want.TotalIncome ||
		got.TotalExpenses != want.TotalExpenses ||
		got.NetProfit != want.NetProfit {
		t.Fatalf("other-year entries changed totals: got %+v want %+v", got, want)
	}
	if len(got.ServiceBreakdown) != len(want.ServiceBreakdown) {
		t.Fatalf("other-year entries leaked into breakdown: %+v", got.ServiceBreakdown)
	}
}

func TestComputeAnalyticsNetProfitIdentity(t *testing.T) {
	collections := [][]Entry{
		nil,
		{
			{Type: TypeHaircut, Service: "Wet cut", Amount: "35", Date: "2024-01-05"},
			{Type: TypeMisc, Description: "Products", Amount: "8.20", Date: "2024-02-14"},
			{Type: TypeExpense, Description: "Foils", Amount: "11.99", Date: "2024-02-20"},
			{Type: TypeExpense, Description: "Towels", Amount: "24", Date: "2024-11-30"},
		},
		{
			{Type: TypeExpense, Description: "Chair", Amount: "150", Date: "2024-06-01"},
		},
	}

	for i, entries := range collections {
		res := ComputeAnalytics(entries, date(2024, 12, 31))
		if res.NetProfit.Cents != res.TotalIncome.Cents-res.TotalExpenses.Cents {
			t.Fatalf("collection %d: netProfit %d != income %d - expenses %d",
				i, res.NetProfit.Cents, res.TotalIncome.Cents, res.TotalExpenses.Cents)
		}
	}
}

func TestComputeAnalyticsMonthlySumsMatchTotals(t *testing.T) {
	entries := []Entry{
		{Type: TypeHaircut, Service: "Restyle", Amount: "55", Date: "2024-01-10"},
		{Type: TypeHaircut, Service: "Toner", Amount: "15", Date: "2024-01-22"},
		{Type: TypeMisc, Description: "Gift card", Amount: "25", Date: "2024-03-03"},
		{Type: TypeExpense, Description: "Colour stock", Amount: "42.75", Date: "2024-03-09"},
		{Type: TypeExpense, Description: "Insurance", Amount: "99", Date: "2024-10-01"},
	}

	res := ComputeAnalytics(entries, date(2024, 12, 1))

	var income, expenses int64
	for _, flow := range res.MonthlyData {
		income += flow.Income.Cents
		expenses += flow.Expenses.Cents
	}
	if income != res.TotalIncome.Cents {
		t.Fatalf("sum of monthly income %d != totalIncome %d", income, res.TotalIncome.Cents)
	}
	if expenses != res.TotalExpenses.Cents {
		t.Fatalf("sum of monthly expenses %d != totalExpenses %d", expenses, res.TotalExpenses.Cents)
	}
}

func TestComputeAnalyticsUnparseableAmount(t *testing.T) {
	entries := []Entry{
		{Type: TypeHaircut, Service: "Dry cut", Amount: "abc", Date: "2024-04-01"},
		{Type: TypeHaircut, Service: "Dry cut", Amount: "20", Date: "2024-04-02"},
	}

	res := ComputeAnalytics(entries, date(2024, 5, 1))

	if res.TotalIncome.Cents != 2000 {
		t.Fatalf("totalIncome = %d, want 2000 (bad amount counts as zero)", res.TotalIncome.Cents)
	}
	if res.EntryCount != 2 {
		t.Fatalf("entryCount = %d, want 2", res.EntryCount)
	}
}

func TestComputeAnalyticsUnparseableDateFallsBackToAsOf(t *testing.T) {
	entries := []Entry{
		{Type: TypeMisc, Description: "Mystery", Amount: "10", Date: "not-a-date"},
	}

	asOf := date(2024, 9, 15)
	res := ComputeAnalytics(entries, asOf)

	if res.TotalIncome.Cents != 1000 {
		t.Fatalf("totalIncome = %d, want 1000", res.TotalIncome.Cents)
	}
	if got := res.MonthlyData["September"]; got.Income.Cents != 1000 {
		t.Fatalf("expected bad date bucketed into September, got %+v", res.MonthlyData)
	}
}

func TestComputeAnalyticsOtherIncomeBucket(t *testing.T) {
	entries := []Entry{
		{Type: TypeMisc, Description: "Tips", Amount: "5", Date: "2024-02-01"},
		{Type: TypeHaircut, Service: "", Amount: "20", Date: "2024-02-02"},
	}

	res := ComputeAnalytics(entries, date(2024, 2, 10))

	if got := res.ServiceBreakdown[OtherIncomeKey].Cents; got != 2500 {
		t.Fatalf("serviceBreakdown[%s] = %d, want 2500", OtherIncomeKey, got)
	}
}

func TestComputeAnalyticsQuantityNotReapplied(t *testing.T) {
	// Amount is the already-multiplied total; quantity is metadata only.
	entries := []Entry{
		{Type: TypeHaircut, Service: "Dry cut", Amount: "40", Quantity: 2, Date: "2024-03-01"},
	}

	res := ComputeAnalytics(entries, date(2024, 3, 31))
	if res.TotalIncome.Cents != 4000 {
		t.Fatalf("totalIncome = %d, want 4000", res.TotalIncome.Cents)
	}
}

func TestDailySeriesWindow(t *testing.T) {
	asOf := date(2024, 3, 10)
	entries := []Entry{
		{Type: TypeHaircut, Service: "Dry cut", Amount: "20", Date: "2024-03-10"},
		{Type: TypeExpense, Description: "Towels", Amount: "6", Date: "2024-03-10"},
		{Type: TypeMisc, Description: "Tips", Amount: "4", Date: "2024-03-04"},
		{Type: TypeHaircut, Service: "Wet cut", Amount: "35", Date: "2024-03-03"}, // outside window
	}

	series := DailySeries(entries, asOf, 7)

	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	if series[0].Day != "2024-03-04" || series[6].Day != "2024-03-10" {
		t.Fatalf("window bounds wrong: first %s last %s", series[0].Day, series[6].Day)
	}
	if series[0].Income.Cents != 400 {
		t.Fatalf("oldest bucket income = %d, want 400", series[0].Income.Cents)
	}
	last := series[6]
	if last.Income.Cents != 2000 || last.Expenses.Cents != 600 || last.Net.Cents != 1400 {
		t.Fatalf("asOf bucket = %+v, want income 2000 expenses 600 net 1400", last)
	}
}

func TestDailySeriesEmptyAndDegenerate(t *testing.T) {
	series := DailySeries(nil, date(2024, 1, 15), 30)
	if len(series) != 30 {
		t.Fatalf("len(series) = %d, want 30", len(series))
	}
	for _, b := range series {
		if b.Income.Cents != 0 || b.Expenses.Cents != 0 || b.Net.Cents != 0 {
			t.Fatalf("expected all-zero bucket, got %+v", b)
		}
	}

	if got := DailySeries(nil, date(2024, 1, 15), 0); got != nil {
		t.Fatalf("window 0 should return nil, got %v", got)
	}
}
