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

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a SQLite-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.ChatSession) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `INSERT INTO chat_sessions (id, title, last_message, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.Title, session.LastMessage, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatSession, error) {
	var session domain.ChatSession
	err := r.db.GetContext(ctx, &session, "SELECT * FROM chat_sessions WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]domain.ChatSession, error) {
	var sessions []domain.ChatSession
	err := r.db.SelectContext(ctx, &sessions,
		"SELECT * FROM chat_sessions ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.List: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepo) Touch(ctx context.Context, id uuid.UUID, lastMessage string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE chat_sessions SET last_message = ?, updated_at = ? WHERE id = ?",
		lastMessage, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sessionRepo.Touch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM chat_sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) AppendMessage(ctx context.Context, msg *domain.Message) error {
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO messages (id, session_id, role, text, attachment_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SessionID, msg.Role, msg.Text, msg.AttachmentID, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.AppendMessage: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.SelectContext(ctx, &msgs,
		"SELECT * FROM messages WHERE session_id = ? ORDER BY created_at, id", sessionID)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.ListMessages: %w", err)
	}
	return msgs, nil
}
