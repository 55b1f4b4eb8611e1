package cmd

import (
	"path/filepath"
	"testing"

	"github.com/kjoseph/divitrack"
	"github.com/kjoseph/divitrack/date"
)

// usePortfolioFile points the session file at a temp location for the test.
func usePortfolioFile(t *testing.T) {
	t.Helper()
	old := *portfolioFile
	*portfolioFile = filepath.Join(t.TempDir(), "portfolio.jsonl")
	t.Cleanup(func() { *portfolioFile = old })
}

func TestAppendAndDecodePortfolio(t *testing.T) {
	usePortfolioFile(t)

	itc, err := divitrack.NewHolding("ITC.NS", 100, date.New(2023, 1, 1), "")
	if err != nil {
		t.Fatal(err)
	}
	wipro, err := divitrack.NewHolding("WIPRO.NS", 50, date.New(2022, 6, 15), "Wipro Ltd")
	if err != nil {
		t.Fatal(err)
	}

	if err := AppendHolding(itc); err != nil {
		t.Fatal(err)
	}
	if err := AppendHolding(wipro); err != nil {
		t.Fatal(err)
	}

	p, err := DecodePortfolio()
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	var got []divitrack.Holding
	for h := range p.Holdings() {
		got = append(got, h)
	}
	if got[0].Ticker != "ITC.NS" || got[0].Quantity != 100 {
		t.Errorf("first holding = %+v, want ITC.NS x100", got[0])
	}
	if got[1].DisplayName != "Wipro Ltd" {
		t.Errorf("second holding display name = %q, want Wipro Ltd", got[1].DisplayName)
	}
}

func TestDecodePortfolioMissingFile(t *testing.T) {
	usePortfolioFile(t)

	p, err := DecodePortfolio()
	if err != nil {
		t.Fatalf("missing session file should yield an empty portfolio, got %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
}
