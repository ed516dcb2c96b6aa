package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// utf8BOM is prepended so spreadsheet tools recognize the encoding.
const utf8BOM = "\uFEFF"

// csvHeader is the exact exported header row.
var csvHeader = []string{"Date", "Job / Task", "Hours", "Pay", "Note"}

// WriteCSV renders the projection as an RFC-4180 style CSV: UTF-8 with BOM,
// CRLF line endings, fields quoted only when they contain a comma, quote, or
// newline. An empty projection still yields a valid file with the header row.
func WriteCSV(w io.Writer, res Result, meta Meta) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range res.Entries {
		row := []string{
			meta.EntryDate(e),
			JobTaskLabel(e),
			FormatEntryHours(e),
			FormatEntryPay(e),
			e.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// CSVFilename returns the export filename for the given day.
func CSVFilename(t time.Time) string {
	return fmt.Sprintf("timesheet-%s.csv", t.Format("2006-01-02"))
}
