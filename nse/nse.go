// Package nse loads the National Stock Exchange equity reference list, a
// tabular mapping of instrument symbol to company name.
//
// The list is optional: when it cannot be fetched, callers degrade to manual
// ticker entry instead of failing.
package nse

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const equityListURL = "https://archives.nseindia.com/content/equities/EQUITY_L.csv"

// Equity is one row of the exchange's equity list.
type Equity struct {
	Symbol string // bare symbol, without exchange suffix
	Name   string
}

// Selection formats an equity the way pickers present it: "Company Name (SYMBOL)".
func (e Equity) Selection() string { return fmt.Sprintf("%s (%s)", e.Name, e.Symbol) }

// List is the symbol reference list, indexed for lookups. Load it once and
// keep it for the session.
type List struct {
	equities []Equity
	bySymbol map[string]Equity
}

// Fetch downloads the equity list. The response is cached on disk for a
// month; the list changes rarely.
func Fetch() (*List, error) {
	resp, err := monthly().Get(equityListURL)
	if err != nil {
		return nil, fmt.Errorf("fetch equity list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch equity list: %v", resp.Status)
	}
	return Parse(resp.Body)
}

// Parse reads the CSV equity list. The SYMBOL and "NAME OF COMPANY" columns
// are required; anything else is ignored.
func Parse(r io.Reader) (*List, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("equity list has no header: %w", err)
	}
	symCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "SYMBOL":
			symCol = i
		case "NAME OF COMPANY":
			nameCol = i
		}
	}
	if symCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("equity list is missing SYMBOL or NAME OF COMPANY columns: %v", header)
	}

	l := &List{bySymbol: make(map[string]Equity)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("equity list: %w", err)
		}
		e := Equity{
			Symbol: strings.ToUpper(strings.TrimSpace(record[symCol])),
			Name:   strings.TrimSpace(record[nameCol]),
		}
		if e.Symbol == "" {
			continue
		}
		l.equities = append(l.equities, e)
		l.bySymbol[e.Symbol] = e
	}
	sort.Slice(l.equities, func(i, j int) bool { return l.equities[i].Symbol < l.equities[j].Symbol })
	return l, nil
}

// Len returns the number of listed equities.
func (l *List) Len() int { return len(l.equities) }

// Lookup returns the equity for a bare symbol (no exchange suffix).
func (l *List) Lookup(symbol string) (Equity, bool) {
	e, ok := l.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return e, ok
}

// Search returns equities whose symbol or company name contains the query,
// case-insensitively, in symbol order.
func (l *List) Search(query string) []Equity {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Equity
	for _, e := range l.equities {
		if strings.Contains(strings.ToLower(e.Symbol), query) || strings.Contains(strings.ToLower(e.Name), query) {
			out = append(out, e)
		}
	}
	return out
}

// diskCache implements a simple disk cache for HTTP responses, keyed by month.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01"), req.Method, req.URL.String())
	key = fmt.Sprintf("divitrack-%x", sha1.Sum([]byte(key)))

	file := filepath.Join(os.TempDir(), key)
	if content, err := os.ReadFile(file); err == nil { // Cache hit
		return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	if err := os.WriteFile(file, content, 0644); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// monthly returns a client with a disk cache where entries expire monthly.
func monthly() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport}
	return client
}
