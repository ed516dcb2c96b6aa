package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

const (
	// pdfLineHeight is the vertical advance per wrapped text line, in mm.
	pdfLineHeight = 5.0
	// jobTaskLineChars approximates how many size-10 characters fit one
	// line of the Job / Task column; wrapped rows grow by whole lines.
	jobTaskLineChars = 42
)

// BuildPDF lays out the timesheet document: a title block with identity,
// range, and totals, then one table row per entry. Long Job / Task labels
// wrap and grow their row; maroto starts a new page when a row would run
// past the bottom margin.
func BuildPDF(res Result, meta Meta) pdf.Maroto {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("Timesheet", props.Text{Size: 16, Style: consts.Bold})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("User: %s", meta.Email), props.Text{Size: 10})
		})
	})
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Range: %s", meta.RangeLabel()), props.Text{Size: 10})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(
				fmt.Sprintf("Total hours: %.2f    Estimated gross: $%.2f", res.TotalHours, res.TotalGross),
				props.Text{Size: 10, Style: consts.Bold},
			)
		})
	})

	m.Row(7, func() {
		m.Col(3, func() {
			m.Text("Date", props.Text{Size: 10, Style: consts.Bold})
		})
		m.Col(5, func() {
			m.Text("Job / Task", props.Text{Size: 10, Style: consts.Bold})
		})
		m.Col(2, func() {
			m.Text("Hours", props.Text{Size: 10, Style: consts.Bold, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Pay", props.Text{Size: 10, Style: consts.Bold, Align: consts.Right})
		})
	})

	for _, e := range res.Entries {
		entry := e
		jobTask := JobTaskLabel(entry)
		height := float64(wrappedLineCount(jobTask, jobTaskLineChars)) * pdfLineHeight

		m.Row(height, func() {
			m.Col(3, func() {
				m.Text(meta.EntryDate(entry), props.Text{Size: 10})
			})
			m.Col(5, func() {
				m.Text(jobTask, props.Text{Size: 10})
			})
			m.Col(2, func() {
				m.Text(FormatEntryHours(entry), props.Text{Size: 10, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(FormatEntryPay(entry), props.Text{Size: 10, Align: consts.Right})
			})
		})
	}

	return m
}

// WritePDF renders the projection to a PDF file at path. An empty projection
// still produces a valid single-page document with the title block.
func WritePDF(path string, res Result, meta Meta) error {
	if err := BuildPDF(res, meta).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// PDFFilename returns the export filename for the given day.
func PDFFilename(t time.Time) string {
	return fmt.Sprintf("timesheet-%s.pdf", t.Format("2006-01-02"))
}

// wrappedLineCount estimates how many lines text occupies when word-wrapped
// at perLine characters, minimum one.
func wrappedLineCount(text string, perLine int) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}

	lines := 1
	current := 0
	for _, w := range words {
		wlen := len([]rune(w))
		if current == 0 {
			current = wlen
			continue
		}
		if current+1+wlen > perLine {
			lines++
			current = wlen
		} else {
			current += 1 + wlen
		}
	}
	return lines
}
