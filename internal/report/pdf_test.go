package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbandrews2/crewclock/internal/domain"
)

func TestWrappedLineCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		per  int
		want int
	}{
		{"empty", "", 42, 1},
		{"short label", "Smith Residence (JOB-104) / Framing", 42, 1},
		{"fits exactly", "aaaa bbbb", 9, 1},
		{"spills by one", "aaaa bbbbb", 9, 2},
		{"long label wraps twice", "Northeast Corridor Substation Retrofit (JOB-2201) / Conduit rough-in and panel termination", 42, 3},
		{"single oversized word", "aaaaaaaaaaaaaaaaaaaa", 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrappedLineCount(tt.text, tt.per))
		})
	}
}

func TestBuildPDFProducesDocument(t *testing.T) {
	loc := time.UTC
	entries := []*domain.TimeEntry{
		closedEntry("job-1", time.Date(2025, 11, 18, 8, 0, 0, 0, loc), 7200, 45.00),
		closedEntry("job-1", time.Date(2025, 11, 20, 8, 0, 0, 0, loc), 16200, 81.00),
	}
	res := Apply(entries, JobAll, nil, nil, loc)
	meta := Meta{Email: "crew@example.com", Loc: loc}

	buf, err := BuildPDF(res, meta).Output()
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
}

func TestBuildPDFEmptyProjection(t *testing.T) {
	buf, err := BuildPDF(Result{}, Meta{Email: "crew@example.com", Loc: time.UTC}).Output()
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
}

func TestWritePDFCreatesFile(t *testing.T) {
	path := t.TempDir() + "/" + PDFFilename(time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC))
	err := WritePDF(path, Result{}, Meta{Email: "crew@example.com", Loc: time.UTC})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
