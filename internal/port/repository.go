package port

import (
	"context"

	"github.com/google/uuid"

	"facturo/internal/domain"
)

// SessionRepository defines the contract for chat session persistence.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.ChatSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatSession, error)
	List(ctx context.Context) ([]domain.ChatSession, error)
	Touch(ctx context.Context, id uuid.UUID, lastMessage string) error
	Delete(ctx context.Context, id uuid.UUID) error
	AppendMessage(ctx context.Context, msg *domain.Message) error
	ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.Message, error)
}

// AttachmentRepository defines the contract for uploaded file persistence.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.FileAttachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FileAttachment, error)
}

// RecordRepository defines the contract for extracted record persistence.
type RecordRepository interface {
	Create(ctx context.Context, rec *domain.ExtractedRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractedRecord, error)
	LatestBySession(ctx context.Context, sessionID uuid.UUID) (*domain.ExtractedRecord, error)
}
