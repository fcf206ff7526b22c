package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facturo/internal/domain"
	"facturo/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a SQLite-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, rec *domain.ExtractedRecord) error {
	rec.CreatedAt = time.Now().UTC()

	query := `INSERT INTO extracted_records (id, session_id, source_text, data, usable, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.SessionID, rec.SourceText, []byte(rec.Data), rec.Usable, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("recordRepo.Create: %w", err)
	}
	return nil
}

func (r *recordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractedRecord, error) {
	var rec domain.ExtractedRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM extracted_records WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("recordRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *recordRepo) LatestBySession(ctx context.Context, sessionID uuid.UUID) (*domain.ExtractedRecord, error) {
	var rec domain.ExtractedRecord
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM extracted_records WHERE session_id = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("recordRepo.LatestBySession: %w", err)
	}
	return &rec, nil
}
