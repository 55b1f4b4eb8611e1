package divitrack

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Exchange suffixes recognized on Indian tickers.
const (
	NSESuffix = ".NS"
	BSESuffix = ".BO"
)

// maxTickerLen bounds symbol length; Indian tickers rarely exceed 15 chars.
const maxTickerLen = 20

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.]+$`)

var (
	// ErrTickerTooLong is returned for symbols longer than 20 characters.
	ErrTickerTooLong = errors.New("ticker symbol is too long")
	// ErrTickerInvalid is returned for symbols containing characters outside [A-Z0-9.].
	ErrTickerInvalid = errors.New("ticker contains invalid characters")
	// ErrEmptySymbol is returned when resolution yields no symbol at all.
	ErrEmptySymbol = errors.New("empty symbol")
)

// CleanTicker normalizes a raw symbol (uppercase, trimmed) and checks it
// against the allowed ticker format. It is an allow-list input filter: its
// purpose is to reject malformed symbols before a network lookup is attempted.
func CleanTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		return "", ErrEmptySymbol
	}
	if len(ticker) > maxTickerLen {
		return "", fmt.Errorf("%q: %w", ticker, ErrTickerTooLong)
	}
	if !tickerPattern.MatchString(ticker) {
		return "", fmt.Errorf("%q: %w", ticker, ErrTickerInvalid)
	}
	return ticker, nil
}

// ResolveSelection maps a user-facing selection to a canonical ticker and an
// optional display name.
//
// Selections come in two forms: a free-typed symbol ("ITC.NS"), or a
// "Company Name (SYMBOL)" entry picked from the reference list. For the
// latter, the symbol is the substring between the last '(' and the following
// ')'. Either way the symbol goes through CleanTicker, and the NSE suffix is
// appended when the symbol carries no exchange marker.
func ResolveSelection(sel string) (ticker, display string, err error) {
	sel = strings.TrimSpace(sel)
	open := strings.LastIndex(sel, "(")
	if open < 0 {
		ticker, err = CleanTicker(sel)
		if err != nil {
			return "", "", err
		}
		return EnsureSuffix(ticker), "", nil
	}

	close := strings.Index(sel[open:], ")")
	if close < 0 {
		return "", "", fmt.Errorf("selection %q: missing closing parenthesis", sel)
	}
	raw := sel[open+1 : open+close]
	if strings.TrimSpace(raw) == "" {
		return "", "", fmt.Errorf("selection %q: %w", sel, ErrEmptySymbol)
	}
	ticker, err = CleanTicker(raw)
	if err != nil {
		return "", "", err
	}
	return EnsureSuffix(ticker), strings.TrimSpace(sel[:open]), nil
}

// EnsureSuffix appends the NSE suffix to tickers that carry no exchange marker.
func EnsureSuffix(ticker string) string {
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + NSESuffix
}

// SuffixAdvice returns a hint for manually typed tickers that look like they
// are missing an exchange marker, or "" when the ticker looks fine. Bare
// all-alphabetic symbols are left alone: they are commonly US listings.
func SuffixAdvice(ticker string) string {
	if strings.HasSuffix(ticker, NSESuffix) || strings.HasSuffix(ticker, BSESuffix) {
		return ""
	}
	if isAlpha(ticker) {
		return ""
	}
	return "Tip: NSE symbols usually need a .NS suffix (e.g. RELIANCE.NS)"
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return s != ""
}
