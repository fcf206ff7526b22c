package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"facturo/internal/domain"
	"facturo/internal/extract"
	"facturo/internal/port"
)

const defaultSessionTitle = "Nouvelle conversation"

const standardReply = "Merci ! Tapez **donner le facture** ou **generate my pdf facture** " +
	"pour obtenir votre document. Vous pouvez aussi téléverser une image, un PDF ou un " +
	"document (note, facture ou texte libre) pour générer automatiquement votre facture."

// BotReply is a bot message plus its rendered HTML.
type BotReply struct {
	Message domain.Message `json:"message"`
	HTML    string         `json:"html"`
}

// SendMessageOutput is the result of posting one user message.
type SendMessageOutput struct {
	UserMessage domain.Message `json:"user_message"`
	Bot         BotReply       `json:"bot"`
	// Record is set when the message triggered invoice generation.
	Record *domain.ExtractedRecord `json:"record,omitempty"`
}

// SessionDetail is a session with its full message history.
type SessionDetail struct {
	Session  domain.ChatSession `json:"session"`
	Messages []domain.Message   `json:"messages"`
}

// ChatService defines the chat conversation contract.
type ChatService interface {
	CreateSession(ctx context.Context, title string) (*domain.ChatSession, error)
	ListSessions(ctx context.Context) ([]domain.ChatSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionDetail, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	SendMessage(ctx context.Context, sessionID uuid.UUID, text string) (*SendMessageOutput, error)
}

type chatService struct {
	sessions  port.SessionRepository
	records   port.RecordRepository
	extractor *extract.Extractor
}

// NewChatService creates a new ChatService implementation.
func NewChatService(
	sessions port.SessionRepository,
	records port.RecordRepository,
	extractor *extract.Extractor,
) ChatService {
	return &chatService{sessions: sessions, records: records, extractor: extractor}
}

func (s *chatService) CreateSession(ctx context.Context, title string) (*domain.ChatSession, error) {
	if title == "" {
		title = defaultSessionTitle
	}
	session := &domain.ChatSession{ID: uuid.New(), Title: title}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *chatService) ListSessions(ctx context.Context) ([]domain.ChatSession, error) {
	return s.sessions.List(ctx)
}

func (s *chatService) GetSession(ctx context.Context, id uuid.UUID) (*SessionDetail, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.sessions.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: *session, Messages: msgs}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.sessions.Delete(ctx, id)
}

// SendMessage appends the user message, answers it and persists both
// sides of the exchange. An invoice-intent message resolves a record:
// the session's latest usable one when present, otherwise a fresh
// extraction over the message text itself.
func (s *chatService) SendMessage(ctx context.Context, sessionID uuid.UUID, text string) (*SendMessageOutput, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}

	userMsg := domain.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Text:      text,
	}
	if err := s.sessions.AppendMessage(ctx, &userMsg); err != nil {
		return nil, fmt.Errorf("appending user message: %w", err)
	}

	out := &SendMessageOutput{UserMessage: userMsg}

	replyText := standardReply
	if IsInvoiceIntent(text) {
		record, err := s.resolveRecord(ctx, sessionID, text)
		if err != nil {
			return nil, err
		}
		out.Record = record

		if record.Usable {
			rec, err := record.Record()
			if err != nil {
				return nil, fmt.Errorf("decoding record: %w", err)
			}
			replyText = fmt.Sprintf(
				"✅ Données de facture extraites : %d produit(s), Total : %.2f €.\n\n"+
					"Téléchargez le document via `/api/v1/records/%s/export?format=xlsx` (ou `format=csv`).",
				len(rec.Items), rec.Total, record.ID)
		} else {
			replyText = "❌ Les données de facture sont invalides ou incomplètes. " +
				"Ajoutez une ligne **Commande :** avec vos produits et un total, puis réessayez — " +
				"ou téléversez une image de votre facture."
		}
	}

	botMsg := domain.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      domain.RoleBot,
		Text:      replyText,
	}
	if err := s.sessions.AppendMessage(ctx, &botMsg); err != nil {
		return nil, fmt.Errorf("appending bot message: %w", err)
	}
	if err := s.sessions.Touch(ctx, sessionID, botMsg.Text); err != nil {
		log.Printf("service.chatService: touching session %s: %v", sessionID, err)
	}

	out.Bot = BotReply{Message: botMsg, HTML: RenderMarkdown(botMsg.Text)}
	return out, nil
}

// resolveRecord reuses the latest usable record of the session or
// extracts a new one from the message text.
func (s *chatService) resolveRecord(ctx context.Context, sessionID uuid.UUID, text string) (*domain.ExtractedRecord, error) {
	latest, err := s.records.LatestBySession(ctx, sessionID)
	if err == nil && latest.Usable {
		return latest, nil
	}
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	rec := s.extractor.ExtractInvoiceRecord(text)
	return persistRecord(ctx, s.records, sessionID, text, rec)
}

// persistRecord serializes an extraction result and stores it.
func persistRecord(ctx context.Context, records port.RecordRepository, sessionID uuid.UUID, sourceText string, rec *domain.InvoiceRecord) (*domain.ExtractedRecord, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	stored := &domain.ExtractedRecord{
		ID:         uuid.New(),
		SessionID:  sessionID,
		SourceText: sourceText,
		Data:       data,
		Usable:     rec.Usable(),
	}
	if err := records.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("storing record: %w", err)
	}
	return stored, nil
}
