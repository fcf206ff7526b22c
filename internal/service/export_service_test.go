package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facturo/internal/domain"
	"facturo/internal/export"
	"facturo/internal/extract"
)

func exportFixture(t *testing.T, usable bool) (ExportService, uuid.UUID) {
	t.Helper()
	store := newMemStore()
	sessionID := uuid.New()

	text := uploadedInvoice
	if !usable {
		text = "juste une note"
	}
	rec := extract.New(extract.Options{}).ExtractInvoiceRecord(text)
	stored, err := persistRecord(context.Background(), store.recordRepo(), sessionID, text, rec)
	require.NoError(t, err)
	require.Equal(t, usable, stored.Usable)

	return NewExportService(store.recordRepo()), stored.ID
}

func TestExportService_CSV(t *testing.T) {
	svc, recordID := exportFixture(t, true)

	out, err := svc.Export(context.Background(), recordID, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)
	assert.Contains(t, out.FileName, ".csv")
	assert.True(t, bytes.HasPrefix(out.Data, export.BOM))
	assert.Contains(t, string(out.Data), "Jean Dupont")
}

func TestExportService_XLSX(t *testing.T) {
	svc, recordID := exportFixture(t, true)

	out, err := svc.Export(context.Background(), recordID, FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.ContentType)
	assert.Contains(t, out.FileName, ".xlsx")
	// XLSX files are zip containers.
	assert.True(t, bytes.HasPrefix(out.Data, []byte("PK")))
}

func TestExportService_NotUsable(t *testing.T) {
	svc, recordID := exportFixture(t, false)

	_, err := svc.Export(context.Background(), recordID, FormatCSV)
	assert.ErrorIs(t, err, domain.ErrRecordNotUsable)
}

func TestExportService_UnknownFormat(t *testing.T) {
	svc, recordID := exportFixture(t, true)

	_, err := svc.Export(context.Background(), recordID, "pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFmt)
}

func TestExportService_RecordNotFound(t *testing.T) {
	svc, _ := exportFixture(t, true)

	_, err := svc.Export(context.Background(), uuid.New(), FormatCSV)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = svc.GetRecord(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
