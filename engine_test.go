package divitrack

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kjoseph/divitrack/date"
	"github.com/shopspring/decimal"
)

// stubSource serves canned dividend histories; a nil slice with a matching
// entry in errs simulates a provider failure.
type stubSource struct {
	series map[string][]DividendEvent
	errs   map[string]error
}

func (s stubSource) Dividends(ticker string) ([]DividendEvent, error) {
	if err := s.errs[ticker]; err != nil {
		return nil, err
	}
	return s.series[ticker], nil
}

func ev(y, m, d int, amount string) DividendEvent {
	return DividendEvent{
		RecordDate: date.New(y, time.Month(m), d),
		Amount:     decimal.RequireFromString(amount),
		Currency:   DefaultCurrency,
	}
}

func singleHolding(t *testing.T, ticker string, qty int, purchase date.Date) *Portfolio {
	t.Helper()
	p := NewPortfolio()
	if _, err := p.Add(ticker, qty, purchase, ""); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAggregateFiltersByPurchaseDate(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {
			ev(2022, 12, 1, "4"),  // before purchase, excluded
			ev(2023, 2, 1, "5.5"), // qualifies
		},
	}}

	report, err := Aggregate(p, TaxConfig{Slab: 30, ApplyWithholding: true}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(report.Items))
	}
	it := report.Items[0]
	if it.RecordDate != date.New(2023, 2, 1) {
		t.Errorf("RecordDate = %s, want 2023-02-01", it.RecordDate)
	}
	if want := M(550, "INR"); !it.TotalPayout.Equal(want) {
		t.Errorf("TotalPayout = %s, want %s", it.TotalPayout, want)
	}
	if want := M(550, "INR"); !report.Summary.GrossDividend.Equal(want) {
		t.Errorf("GrossDividend = %s, want %s", report.Summary.GrossDividend, want)
	}
}

func TestAggregatePurchaseDateItselfExcluded(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {ev(2023, 1, 1, "5")},
	}}

	report, err := Aggregate(p, TaxConfig{Slab: 30}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Items) != 0 {
		t.Errorf("a dividend dated on the purchase date must not qualify, got %d items", len(report.Items))
	}
}

func TestAggregateIsolatesFailingHolding(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("BADBAD.NS", 10, date.New(2023, 1, 1), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add("ITC.NS", 100, date.New(2023, 1, 1), ""); err != nil {
		t.Fatal(err)
	}
	src := stubSource{
		series: map[string][]DividendEvent{"ITC.NS": {ev(2023, 2, 1, "5.5")}},
		errs:   map[string]error{"BADBAD.NS": errors.New("404 not found")},
	}

	report, err := Aggregate(p, TaxConfig{Slab: 30}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(report.Items))
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
	w := report.Warnings[0]
	if w.Ticker != "BADBAD.NS" || !strings.Contains(w.Reason, "check the symbol") {
		t.Errorf("warning = %+v", w)
	}
}

func TestAggregateWarnsOnEmptyHistory(t *testing.T) {
	p := singleHolding(t, "GROWTHCO.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{}}

	report, err := Aggregate(p, TaxConfig{Slab: 30}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Reason != "no dividend history" {
		t.Fatalf("warnings = %+v, want one 'no dividend history'", report.Warnings)
	}
	if !report.Summary.GrossDividend.IsZero() {
		t.Errorf("GrossDividend = %s, want zero", report.Summary.GrossDividend)
	}
}

func TestSummaryTax(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 1000, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {ev(2023, 2, 1, "10")}, // 1000 × 10 = 10000 gross
	}}

	report, err := Aggregate(p, TaxConfig{Slab: 30, ApplyWithholding: true}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	s := report.Summary
	if want := M(10000, "INR"); !s.GrossDividend.Equal(want) {
		t.Errorf("GrossDividend = %s, want %s", s.GrossDividend, want)
	}
	if want := M(1000, "INR"); !s.Withholding.Equal(want) {
		t.Errorf("Withholding = %s, want %s", s.Withholding, want)
	}
	if want := M(3000, "INR"); !s.IncomeTax.Equal(want) {
		t.Errorf("IncomeTax = %s, want %s", s.IncomeTax, want)
	}
	// TDS is a pre-paid credit: net is gross minus slab tax only.
	if want := M(7000, "INR"); !s.NetInHand.Equal(want) {
		t.Errorf("NetInHand = %s, want %s", s.NetInHand, want)
	}
}

func TestSummaryZeroSlab(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {ev(2023, 2, 1, "5")},
	}}

	report, err := Aggregate(p, TaxConfig{Slab: 0}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	s := report.Summary
	if !s.IncomeTax.IsZero() {
		t.Errorf("IncomeTax = %s, want zero", s.IncomeTax)
	}
	if !s.NetInHand.Equal(s.GrossDividend) {
		t.Errorf("NetInHand = %s, want gross %s", s.NetInHand, s.GrossDividend)
	}
	if !s.Withholding.IsZero() {
		t.Errorf("Withholding = %s, want zero when disabled", s.Withholding)
	}
}

func TestAggregateSortsMostRecentFirst(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("ITC.NS", 100, date.New(2022, 1, 1), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add("WIPRO.NS", 50, date.New(2022, 1, 1), ""); err != nil {
		t.Fatal(err)
	}
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS":   {ev(2022, 6, 1, "5"), ev(2023, 2, 1, "6")},
		"WIPRO.NS": {ev(2022, 12, 1, "1")},
	}}

	report, err := Aggregate(p, TaxConfig{Slab: 30}, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	var dates []string
	for _, it := range report.Items {
		dates = append(dates, it.RecordDate.String())
	}
	want := []string{"2023-02-01", "2022-12-01", "2022-06-01"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want %v", dates, want)
		}
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {ev(2023, 2, 1, "5.5"), ev(2023, 8, 1, "2.75")},
	}}

	cfg := TaxConfig{Slab: 20, ApplyWithholding: true}
	first, err := Aggregate(p, cfg, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Aggregate(p, cfg, src, WithPacing(0))
	if err != nil {
		t.Fatal(err)
	}
	if !first.Summary.GrossDividend.Equal(second.Summary.GrossDividend) ||
		!first.Summary.NetInHand.Equal(second.Summary.NetInHand) ||
		len(first.Items) != len(second.Items) {
		t.Error("two runs over unchanged inputs must agree")
	}
}

func TestAggregateProgress(t *testing.T) {
	p := singleHolding(t, "ITC.NS", 100, date.New(2023, 1, 1))
	src := stubSource{series: map[string][]DividendEvent{
		"ITC.NS": {ev(2023, 2, 1, "5.5")},
	}}

	var buf strings.Builder
	if _, err := Aggregate(p, TaxConfig{Slab: 30}, src, WithPacing(0), WithProgress(&buf)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Verifying ITC.NS...\n" {
		t.Errorf("progress = %q", got)
	}
}

func TestAggregateNilInputs(t *testing.T) {
	src := stubSource{}
	if _, err := Aggregate(nil, TaxConfig{}, src); err == nil {
		t.Error("nil portfolio must error")
	}
	p := NewPortfolio()
	if _, err := Aggregate(p, TaxConfig{}, nil); err == nil {
		t.Error("nil source must error")
	}
}
