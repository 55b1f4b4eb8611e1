package divitrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kjoseph/divitrack/date"
)

// This file handles the portfolio session file format: a JSONL file, one
// holding per line. It should remain human readable and trivially appendable.

// jholding is the object read from and written to the session file.
type jholding struct {
	Ticker   string    `json:"ticker"`
	Quantity int       `json:"quantity"`
	Purchase date.Date `json:"purchase"`
	Name     string    `json:"name,omitempty"`
}

// EncodeHolding appends a single holding to w in the session file format.
func EncodeHolding(w io.Writer, h Holding) error {
	data, err := json.Marshal(jholding{
		Ticker:   h.Ticker,
		Quantity: h.Quantity,
		Purchase: h.PurchaseDate,
		Name:     h.DisplayName,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodePortfolio writes all holdings to w, one per line, in portfolio order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for h := range p.Holdings() {
		if err := EncodeHolding(w, h); err != nil {
			return err
		}
	}
	return nil
}

// DecodePortfolio reads a session file. Every line goes through the same
// validation as interactive input, so a decoded portfolio upholds the same
// invariants: a malformed or invalid line is an error, not a partial load.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		var jh jholding
		if err := json.Unmarshal([]byte(text), &jh); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, text, err)
		}
		if _, err := p.Add(jh.Ticker, jh.Quantity, jh.Purchase, jh.Name); err != nil {
			return nil, fmt.Errorf("invalid holding on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}
