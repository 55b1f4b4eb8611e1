package divitrack

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportHeader is the header row of the exported statement.
var ExportHeader = []string{"Stock", "Symbol", "Ex-Date", "Dividend/Share", "Qty", "Total Payout"}

// ExportCSV writes the payout line items of a report as a UTF-8 CSV
// statement, one row per payout, most recent ex-date first. Per-share amounts
// are written exactly as the provider reported them; the total payout is
// rounded to 2 decimal places.
func ExportCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, it := range report.Items {
		record := []string{
			it.Name(),
			it.Ticker,
			it.RecordDate.String(),
			it.AmountPerShare.String(),
			strconv.Itoa(it.Quantity),
			it.TotalPayout.Amount().StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
