package divitrack

import (
	"fmt"
	"iter"

	"github.com/kjoseph/divitrack/date"
)

// Quantity bounds for a single holding.
const (
	MinQuantity = 1
	MaxQuantity = 100000
)

// Holding is one entry in the portfolio: a quantity of a single instrument
// bought on a given date. Dividends with an ex-date strictly after
// PurchaseDate qualify for this holding.
type Holding struct {
	Ticker       string
	Quantity     int
	PurchaseDate date.Date
	DisplayName  string // optional human readable label
}

// NewHolding validates the raw inputs and returns a Holding. Invalid inputs
// never produce a Holding, so a stored holding is always well formed.
func NewHolding(rawTicker string, quantity int, purchase date.Date, displayName string) (Holding, error) {
	ticker, err := CleanTicker(rawTicker)
	if err != nil {
		return Holding{}, err
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return Holding{}, fmt.Errorf("quantity %d out of range [%d, %d]", quantity, MinQuantity, MaxQuantity)
	}
	if purchase.IsZero() {
		return Holding{}, fmt.Errorf("missing purchase date for %s", ticker)
	}
	return Holding{
		Ticker:       ticker,
		Quantity:     quantity,
		PurchaseDate: purchase,
		DisplayName:  displayName,
	}, nil
}

// Name returns the display name, or the ticker when none was provided.
func (h Holding) Name() string {
	if h.DisplayName != "" {
		return h.DisplayName
	}
	return h.Ticker
}

// Portfolio is an ordered, session-scoped collection of holdings.
//
// It is owned by the caller and mutated only between aggregation runs: the
// engine reads it, never writes it. There is no persistence beyond the
// session file the CLI chooses to keep.
type Portfolio struct {
	holdings []Holding
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Add validates the raw inputs and appends the resulting holding. On error
// nothing is stored.
func (p *Portfolio) Add(rawTicker string, quantity int, purchase date.Date, displayName string) (Holding, error) {
	h, err := NewHolding(rawTicker, quantity, purchase, displayName)
	if err != nil {
		return Holding{}, err
	}
	p.holdings = append(p.holdings, h)
	return h, nil
}

// Clear discards all holdings.
func (p *Portfolio) Clear() { p.holdings = p.holdings[:0] }

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Holdings iterates over the holdings in insertion order.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range p.holdings {
			if !yield(h) {
				return
			}
		}
	}
}
