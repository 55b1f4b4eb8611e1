package divitrack

import (
	"strings"
	"testing"

	"github.com/kjoseph/divitrack/date"
)

func TestEncodeDecodePortfolio(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("ITC.NS", 100, date.New(2023, 1, 1), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add("WIPRO.NS", 50, date.New(2022, 6, 15), "Wipro Ltd"); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatal(err)
	}

	got, err := DecodePortfolio(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	var holdings []Holding
	for h := range got.Holdings() {
		holdings = append(holdings, h)
	}
	if holdings[1].Ticker != "WIPRO.NS" || holdings[1].DisplayName != "Wipro Ltd" {
		t.Errorf("second holding = %+v", holdings[1])
	}
	if holdings[0].PurchaseDate != date.New(2023, 1, 1) {
		t.Errorf("purchase date = %s", holdings[0].PurchaseDate)
	}
}

func TestEncodeHoldingOmitsEmptyName(t *testing.T) {
	h, err := NewHolding("ITC.NS", 100, date.New(2023, 1, 1), "")
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := EncodeHolding(&buf, h); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "name") {
		t.Errorf("empty display name should be omitted: %s", buf.String())
	}
}

func TestDecodePortfolioSkipsBlankLines(t *testing.T) {
	in := `{"ticker":"ITC.NS","quantity":100,"purchase":"2023-01-01"}

{"ticker":"WIPRO.NS","quantity":50,"purchase":"2022-06-15"}
`
	p, err := DecodePortfolio(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestDecodePortfolioReportsLineNumber(t *testing.T) {
	in := `{"ticker":"ITC.NS","quantity":100,"purchase":"2023-01-01"}
{"ticker":"ITC.NS","quantity":100,"purchase":
`
	_, err := DecodePortfolio(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want a line 2 format error", err)
	}
}

func TestDecodePortfolioValidates(t *testing.T) {
	in := `{"ticker":"ITC.NS","quantity":0,"purchase":"2023-01-01"}`
	if _, err := DecodePortfolio(strings.NewReader(in)); err == nil {
		t.Error("zero quantity must not decode")
	}
}
