package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"facturo/internal/domain"
	"facturo/internal/export"
	"facturo/internal/port"
)

// Export formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// ExportOutput carries the rendered document and its HTTP metadata.
type ExportOutput struct {
	Data        []byte
	ContentType string
	FileName    string
}

// ExportService renders persisted records as downloadable documents.
type ExportService interface {
	Export(ctx context.Context, recordID uuid.UUID, format string) (*ExportOutput, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.ExtractedRecord, error)
}

type exportService struct {
	records port.RecordRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(records port.RecordRepository) ExportService {
	return &exportService{records: records}
}

func (s *exportService) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.ExtractedRecord, error) {
	return s.records.GetByID(ctx, recordID)
}

// Export renders the record in the requested format. Records that did
// not pass the usability policy cannot be exported.
func (s *exportService) Export(ctx context.Context, recordID uuid.UUID, format string) (*ExportOutput, error) {
	stored, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !stored.Usable {
		return nil, domain.ErrRecordNotUsable
	}
	rec, err := stored.Record()
	if err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	switch format {
	case FormatXLSX:
		data, err := export.XLSX(rec)
		if err != nil {
			return nil, err
		}
		return &ExportOutput{
			Data:        data,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			FileName:    fmt.Sprintf("facture-%s.xlsx", recordID),
		}, nil
	case FormatCSV:
		data, err := export.CSV(rec)
		if err != nil {
			return nil, err
		}
		return &ExportOutput{
			Data:        data,
			ContentType: "text/csv; charset=utf-8",
			FileName:    fmt.Sprintf("facture-%s.csv", recordID),
		}, nil
	}
	return nil, domain.ErrUnsupportedExportFmt
}
