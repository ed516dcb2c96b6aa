package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbandrews2/crewclock/internal/domain"
)

func TestWriteCSVHeaderAndEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, Result{}, Meta{Email: "crew@example.com", Loc: time.UTC})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "output must start with a UTF-8 BOM")
	assert.Equal(t, "\ufeffDate,Job / Task,Hours,Pay,Note\r\n", out)
}

func TestWriteCSVRows(t *testing.T) {
	loc := time.UTC
	e := closedEntry("job-1", time.Date(2025, 11, 20, 8, 0, 0, 0, loc), 16200, 81.00)
	e.Note = "poured footings"

	var buf bytes.Buffer
	err := WriteCSV(&buf, Result{Entries: []*domain.TimeEntry{e}}, Meta{Loc: loc})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-11-20 08:00,Smith Residence (JOB-104) / Framing,4.50,$81.00,poured footings", lines[1])
}

func TestWriteCSVEscapesQuotesAndCommas(t *testing.T) {
	loc := time.UTC
	e := closedEntry("job-1", time.Date(2025, 11, 20, 8, 0, 0, 0, loc), 3600, 18.00)
	e.Note = `He said, "stop"`

	var buf bytes.Buffer
	err := WriteCSV(&buf, Result{Entries: []*domain.TimeEntry{e}}, Meta{Loc: loc})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"He said, ""stop"""`)
}

func TestWriteCSVOpenEntryRow(t *testing.T) {
	loc := time.UTC
	e := openEntry("job-1", time.Date(2025, 11, 20, 8, 0, 0, 0, loc))

	var buf bytes.Buffer
	err := WriteCSV(&buf, Result{Entries: []*domain.TimeEntry{e}}, Meta{Loc: loc})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-11-20 08:00,Smith Residence (JOB-104) / Framing,0.00,—,", lines[1])
}

func TestCSVFilename(t *testing.T) {
	day := time.Date(2025, 11, 20, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "timesheet-2025-11-20.csv", CSVFilename(day))
	assert.Equal(t, "timesheet-2025-11-20.pdf", PDFFilename(day))
}
