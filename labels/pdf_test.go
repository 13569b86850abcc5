package labels

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(n int) []LabelRecord {
	out := make([]LabelRecord, n)
	for i := range out {
		out[i] = LabelRecord{
			ID:       fmt.Sprintf("row-%d", i),
			Name:     fmt.Sprintf("Resident %d", i),
			Address1: fmt.Sprintf("%d Main St", i+1),
			City:     "Springfield",
			State:    "IL",
			Zip:      "62704",
		}
	}
	return out
}

func TestExportPDFPageCount(t *testing.T) {
	tpl, _ := TemplateByID("30-up")

	tests := []struct {
		records int
		pages   int
	}{
		{1, 1},
		{30, 1},
		{31, 2},
		{65, 3},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		pages, err := ExportPDF(sampleRecords(tt.records), tpl, &buf)
		require.NoError(t, err)
		assert.Equal(t, tt.pages, pages, "%d records", tt.records)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is a PDF document")
	}
}

func TestExportPDFRejectsEmptySet(t *testing.T) {
	tpl, _ := TemplateByID("30-up")
	var buf bytes.Buffer
	_, err := ExportPDF(nil, tpl, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestExportPDFFile(t *testing.T) {
	tpl, _ := TemplateByID("10-up")
	path := t.TempDir() + "/out/labels.pdf"
	pages, err := ExportPDFFile(sampleRecords(11), tpl, path)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.FileExists(t, path)
}

func TestExportFilename(t *testing.T) {
	tpl, _ := TemplateByID("20-up")
	now := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "mailing_labels_20-up_2026-08-28.pdf", ExportFilename(tpl, now))
}
