// Package renderer renders divitrack reports and portfolios as markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/kjoseph/divitrack"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the full payout report: the four summary figures,
// the payout log sorted most recent first, and any per-holding warnings.
func ReportMarkdown(r *divitrack.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividend Report")

	s := r.Summary
	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Total Dividend", s.GrossDividend.String()},
			{fmt.Sprintf("Est. TDS (%s)", divitrack.WithholdingRate), s.Withholding.String()},
			{fmt.Sprintf("Tax Liability (%s slab)", s.Slab), s.IncomeTax.String()},
			{"Net In Hand", s.NetInHand.String()},
		},
	})

	doc.H2("Transaction Log")
	if len(r.Items) == 0 {
		doc.PlainText("No dividends found since purchase date.")
	} else {
		rows := make([][]string, 0, len(r.Items))
		for _, it := range r.Items {
			rows = append(rows, []string{
				it.Name(),
				it.Ticker,
				it.RecordDate.String(),
				it.AmountPerShare.String(),
				strconv.Itoa(it.Quantity),
				it.TotalPayout.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Stock", "Symbol", "Ex-Date", "Dividend/Share", "Qty", "Total Payout"},
			Rows:   rows,
		})
	}

	if len(r.Warnings) > 0 {
		doc.H2("Warnings")
		lines := make([]string, 0, len(r.Warnings))
		for _, w := range r.Warnings {
			lines = append(lines, fmt.Sprintf("%s: %s", w.Ticker, w.Reason))
		}
		doc.BulletList(lines...)
	}

	return doc.String()
}

// HoldingsMarkdown renders the portfolio contents as a table.
func HoldingsMarkdown(p *divitrack.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	if p.Len() == 0 {
		doc.PlainText("The portfolio is empty. Add stocks with `divitrack add`.")
		return doc.String()
	}

	rows := make([][]string, 0, p.Len())
	for h := range p.Holdings() {
		rows = append(rows, []string{
			h.Ticker,
			h.Name(),
			strconv.Itoa(h.Quantity),
			h.PurchaseDate.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Stock", "Qty", "Purchase Date"},
		Rows:   rows,
	})
	return doc.String()
}
